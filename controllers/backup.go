package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

type exportBackupInput struct {
	Password string `json:"password"`
}

// ExportBackup returns the full data set as an envelope, encrypted when a
// password is supplied.
func ExportBackup(c *gin.Context) {
	var input exportBackupInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	envelope, err := core.Backup.ExportJSON(c.Request.Context(), input.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope)
}

type importBackupInput struct {
	Envelope services.BackupEnvelope `json:"envelope" binding:"required"`
	Password string                  `json:"password"`
}

// ImportBackup replaces the entire working set with the envelope contents.
func ImportBackup(c *gin.Context) {
	var input importBackupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := core.Backup.ImportJSON(c.Request.Context(), input.Envelope, input.Password); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully"})
}
