package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/models"
	"dentalpro-backend/reqctx"
	"dentalpro-backend/utils"
)

type CreateDoctorInput struct {
	Name                string `json:"name" binding:"required"`
	Phone               string `json:"phone"`
	Specialty           string `json:"specialty"`
	RevenueSharePercent int    `json:"revenueSharePercent" binding:"min=0,max=100"`
}

type UpdateDoctorInput struct {
	Name                *string `json:"name"`
	Phone               *string `json:"phone"`
	Specialty           *string `json:"specialty"`
	Active              *bool   `json:"active"`
	RevenueSharePercent *int    `json:"revenueSharePercent" binding:"omitempty,min=0,max=100"`
}

// Doctor records carry the revenue share, so only the manager edits them.
func requireManager(c *gin.Context) bool {
	if reqctx.Role(c.Request.Context()) != models.RoleManager {
		utils.RespondWithError(c, http.StatusForbidden, "Manager role required")
		return false
	}
	return true
}

func CreateDoctor(c *gin.Context) {
	if !requireManager(c) {
		return
	}
	var input CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	doctor, err := core.Repos.Doctors.Create(models.Doctor{
		Name:                input.Name,
		Phone:               input.Phone,
		Specialty:           input.Specialty,
		Active:              true,
		RevenueSharePercent: input.RevenueSharePercent,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func GetDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, core.Repos.Doctors.List())
}

func GetDoctor(c *gin.Context) {
	doctor, err := core.Repos.Doctors.FindByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func UpdateDoctor(c *gin.Context) {
	if !requireManager(c) {
		return
	}
	var input UpdateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	doctor, err := core.Repos.Doctors.Update(c.Param("id"), func(d *models.Doctor) {
		if input.Name != nil {
			d.Name = *input.Name
		}
		if input.Phone != nil {
			d.Phone = *input.Phone
		}
		if input.Specialty != nil {
			d.Specialty = *input.Specialty
		}
		if input.Active != nil {
			d.Active = *input.Active
		}
		if input.RevenueSharePercent != nil {
			d.RevenueSharePercent = *input.RevenueSharePercent
		}
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}
