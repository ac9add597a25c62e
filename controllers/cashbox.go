package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/reqctx"
	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

func CreateReceipt(c *gin.Context) {
	var input services.CreateReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.CreatedBy == "" {
		input.CreatedBy = reqctx.UserName(c.Request.Context())
	}

	receipt, err := core.Cashbox.CreateReceipt(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func GetReceipts(c *gin.Context) {
	if invoiceID := c.Query("invoiceId"); invoiceID != "" {
		c.JSON(http.StatusOK, core.Repos.Receipts.FindByInvoice(invoiceID))
		return
	}
	c.JSON(http.StatusOK, core.Repos.Receipts.List())
}

type voidInput struct {
	Reason string `json:"reason" binding:"required"`
}

func VoidReceipt(c *gin.Context) {
	var input voidInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	receipt, err := core.Cashbox.VoidReceipt(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func CreatePaymentVoucher(c *gin.Context) {
	var input services.CreateVoucherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.CreatedBy == "" {
		input.CreatedBy = reqctx.UserName(c.Request.Context())
	}

	voucher, err := core.Cashbox.CreatePaymentVoucher(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, voucher)
}

func GetPaymentVouchers(c *gin.Context) {
	c.JSON(http.StatusOK, core.Repos.PaymentVouchers.List())
}

func VoidPaymentVoucher(c *gin.Context) {
	var input voidInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	voucher, err := core.Cashbox.VoidPayment(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, voucher)
}
