package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func CreatePatient(c *gin.Context) {
	var input services.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	patient, err := core.Patients.Create(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetPatients lists all patients, or searches by name, code or phone when a
// search term is given.
func GetPatients(c *gin.Context) {
	term := c.Query("search")
	if term == "" {
		c.JSON(http.StatusOK, core.Repos.Patients.List())
		return
	}
	c.JSON(http.StatusOK, core.Patients.Search(term))
}

func GetPatient(c *gin.Context) {
	patient, err := core.Repos.Patients.FindByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func UpdatePatient(c *gin.Context) {
	var input services.UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	patient, err := core.Patients.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

type attachFilesInput struct {
	Files []services.AttachmentInput `json:"files" binding:"required,min=1,dive"`
}

func AttachPatientFiles(c *gin.Context) {
	var input attachFilesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := core.Patients.AttachFiles(c.Request.Context(), c.Param("id"), input.Files); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Files attached successfully"})
}

func GetPatientFiles(c *gin.Context) {
	c.JSON(http.StatusOK, core.Repos.Attachments.ListByOwner("patient", c.Param("id")))
}

func GetToothMap(c *gin.Context) {
	if _, err := core.Repos.Patients.FindByID(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, core.Patients.GetToothMap(c.Param("id")))
}

type setToothStatusInput struct {
	ToothNumber int    `json:"toothNumber" binding:"required"`
	StatusID    string `json:"statusId" binding:"required"`
	Notes       string `json:"notes"`
}

func SetToothStatus(c *gin.Context) {
	var input setToothStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidToothNumber(input.ToothNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid FDI tooth number")
		return
	}
	if _, err := core.Repos.Patients.FindByID(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	tooth, err := core.Patients.SetToothStatus(c.Request.Context(), c.Param("id"), input.ToothNumber, input.StatusID, input.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tooth)
}
