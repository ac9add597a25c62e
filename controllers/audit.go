package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/utils"
)

// GetAuditLogs lists audit entries, narrowed to one entity when the entity
// and entityId query parameters are given. Manager only.
func GetAuditLogs(c *gin.Context) {
	if !requireManager(c) {
		return
	}
	entity := c.Query("entity")
	entityID := c.Query("entityId")
	if entity != "" && entityID != "" {
		c.JSON(http.StatusOK, core.Repos.AuditLogs.ListByEntity(entity, entityID))
		return
	}
	if entity != "" || entityID != "" {
		utils.RespondWithError(c, http.StatusBadRequest, "entity and entityId must be given together")
		return
	}
	c.JSON(http.StatusOK, core.Repos.AuditLogs.List())
}
