package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func CreateAppointment(c *gin.Context) {
	var input services.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := core.Appointments.Create(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments in the requested window; the window
// defaults to the next seven days.
func GetAppointments(c *gin.Context) {
	start := utils.BeginningOfDay(time.Now())
	end := start.AddDate(0, 0, 7)

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		start = parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		end = parsed
	}

	c.JSON(http.StatusOK, core.Appointments.FindByDateRange(start, end))
}

func UpdateAppointment(c *gin.Context) {
	var input services.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := core.Appointments.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}
