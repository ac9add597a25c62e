// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/services"
	"dentalpro-backend/utils"
)

// ReportController handles all reporting functions
type ReportController struct{}

func (rc *ReportController) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	start := utils.BeginningOfDay(now.AddDate(0, -1, 0))
	end := now

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return start, end, false
		}
		start = parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return start, end, false
		}
		end = parsed
	}
	return start, end, true
}

func (rc *ReportController) assertReportsView(c *gin.Context) bool {
	if err := core.Permissions.Assert(c.Request.Context(), services.ActionReportsView); err != nil {
		handleServiceError(c, err)
		return false
	}
	return true
}

// GetIncomeByPeriod returns income and expense per day or month bucket.
func (rc *ReportController) GetIncomeByPeriod(c *gin.Context) {
	if !rc.assertReportsView(c) {
		return
	}
	granularity := c.DefaultQuery("granularity", "month")
	if granularity != "day" && granularity != "month" {
		utils.RespondWithError(c, http.StatusBadRequest, "granularity must be day or month")
		return
	}
	start, end, ok := rc.parseRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, core.Reports.IncomeByPeriod(c.Request.Context(), start, end, granularity))
}

func (rc *ReportController) GetExpenseByCategory(c *gin.Context) {
	if !rc.assertReportsView(c) {
		return
	}
	start, end, ok := rc.parseRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, core.Reports.ExpenseByCategory(c.Request.Context(), start, end))
}

func (rc *ReportController) GetNetByDoctor(c *gin.Context) {
	if !rc.assertReportsView(c) {
		return
	}
	start, end, ok := rc.parseRange(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, core.Reports.NetByDoctor(c.Request.Context(), start, end))
}

// GetCashBalance reports the running cashbox balance over the full ledger,
// with the amount formatted for display alongside the raw value.
func (rc *ReportController) GetCashBalance(c *gin.Context) {
	if !rc.assertReportsView(c) {
		return
	}
	summary := core.Reports.CashBalance(c.Request.Context())
	display := utils.FormatSignedYER(summary.BalanceYER, c.Query("locale"))
	c.JSON(http.StatusOK, gin.H{
		"balanceYER":  summary.BalanceYER,
		"totalInYER":  summary.TotalInYER,
		"totalOutYER": summary.TotalOutYER,
		"display":     display,
	})
}
