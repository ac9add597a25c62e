package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/models"
	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func CreateLabOrder(c *gin.Context) {
	var input services.CreateLabOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := core.Lab.CreateOrder(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func GetLabOrders(c *gin.Context) {
	if patientID := c.Query("patientId"); patientID != "" {
		c.JSON(http.StatusOK, core.Lab.ListByPatient(patientID))
		return
	}
	c.JSON(http.StatusOK, core.Repos.LabOrders.List())
}

type updateLabStatusInput struct {
	Status models.LabOrderStatus `json:"status" binding:"required,oneof=draft sent received cancelled"`
	Notes  string                `json:"notes"`
}

func UpdateLabOrderStatus(c *gin.Context) {
	var input updateLabStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := core.Lab.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, input.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
