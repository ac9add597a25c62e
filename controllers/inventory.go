package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func CreateInventoryItem(c *gin.Context) {
	var input services.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := core.Inventory.AddItem(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func GetInventoryItems(c *gin.Context) {
	c.JSON(http.StatusOK, core.Repos.InventoryItems.List())
}

func CreateInventoryBatch(c *gin.Context) {
	var input services.AddBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	batch, err := core.Inventory.AddBatch(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, batch)
}

func GetInventoryBatches(c *gin.Context) {
	if itemID := c.Query("itemId"); itemID != "" {
		c.JSON(http.StatusOK, core.Repos.InventoryBatches.FindByItem(itemID))
		return
	}
	c.JSON(http.StatusOK, core.Repos.InventoryBatches.List())
}

type consumeInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

func ConsumeInventoryBatch(c *gin.Context) {
	var input consumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	batch, err := core.Inventory.Consume(c.Request.Context(), c.Param("id"), input.Quantity)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// GetSoonToExpire reports batches expiring within ?months (default 3).
func GetSoonToExpire(c *gin.Context) {
	months := 3
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid months value")
			return
		}
		months = parsed
	}
	c.JSON(http.StatusOK, core.Inventory.SoonToExpire(c.Request.Context(), months))
}
