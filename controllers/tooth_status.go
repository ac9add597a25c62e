package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/models"
	"dentalpro-backend/utils"
)

type CreateToothStatusInput struct {
	Code      string `json:"code" binding:"required"`
	LabelAr   string `json:"labelAr" binding:"required"`
	LabelEn   string `json:"labelEn"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
}

// CreateToothStatus adds a dental chart catalog entry. Codes are unique.
func CreateToothStatus(c *gin.Context) {
	if !requireManager(c) {
		return
	}
	var input CreateToothStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if _, err := core.Repos.ToothStatuses.FindByCode(input.Code); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Tooth status code already exists")
		return
	}

	status, err := core.Repos.ToothStatuses.Create(models.ToothStatus{
		Code:      input.Code,
		LabelAr:   input.LabelAr,
		LabelEn:   input.LabelEn,
		Color:     input.Color,
		IsDefault: input.IsDefault,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

func GetToothStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, core.Repos.ToothStatuses.List())
}
