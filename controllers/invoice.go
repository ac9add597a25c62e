package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func GetInvoice(c *gin.Context) {
	invoice, err := core.Repos.Invoices.FindByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GetInvoices lists invoices, filtered to one patient when patientId is set.
func GetInvoices(c *gin.Context) {
	if patientID := c.Query("patientId"); patientID != "" {
		c.JSON(http.StatusOK, core.Invoices.GetByPatient(patientID))
		return
	}
	c.JSON(http.StatusOK, core.Repos.Invoices.List())
}

func PayInvoice(c *gin.Context) {
	var input services.ApplyReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, receipt, err := core.Invoices.ApplyReceipt(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice, "receipt": receipt})
}

type cancelInvoiceInput struct {
	Reason string `json:"reason" binding:"required"`
}

func CancelInvoice(c *gin.Context) {
	var input cancelInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := core.Invoices.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
