package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/models"
	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func CreateSession(c *gin.Context) {
	var input services.CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	for _, tooth := range input.Teeth {
		if !utils.ValidToothNumber(tooth) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid FDI tooth number")
			return
		}
	}

	session, err := core.Sessions.Create(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func GetSession(c *gin.Context) {
	session, err := core.Repos.Sessions.FindByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessions lists a patient's sessions; patientId is required.
func GetSessions(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "patientId query parameter is required")
		return
	}
	c.JSON(http.StatusOK, core.Sessions.ListByPatient(patientID))
}

func UpdateSession(c *gin.Context) {
	var input services.UpdateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	session, err := core.Sessions.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type linkMaterialsInput struct {
	Materials []models.SessionMaterial `json:"materials" binding:"required,min=1,dive"`
}

func LinkSessionMaterials(c *gin.Context) {
	var input linkMaterialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	session, err := core.Sessions.LinkMaterials(c.Request.Context(), c.Param("id"), input.Materials)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func GenerateSessionInvoice(c *gin.Context) {
	invoice, err := core.Sessions.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}
