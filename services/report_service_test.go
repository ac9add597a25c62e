package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentalpro-backend/models"
)

func seedLedger(t *testing.T, core *Core, date time.Time, kind models.LedgerType, direction models.LedgerDirection, amount int64) {
	t.Helper()
	_, err := core.Repos.Ledger.Create(models.LedgerEntry{
		Date: date, Type: kind, Direction: direction, AmountYER: amount,
	})
	require.NoError(t, err)
}

func TestIncomeByPeriod(t *testing.T) {
	core := newTestCore()
	may := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	seedLedger(t, core, may, models.LedgerInvoice, models.LedgerIn, 30000)
	seedLedger(t, core, may, models.LedgerPaymentVoucher, models.LedgerOut, 5000)
	seedLedger(t, core, june, models.LedgerReceipt, models.LedgerIn, 12000)

	buckets := core.Reports.IncomeByPeriod(managerCtx(), may.AddDate(0, 0, -10), june.AddDate(0, 0, 10), "month")
	require.Len(t, buckets, 2)

	// Sorted ascending by period key.
	assert.Equal(t, "2024-05", buckets[0].Period)
	assert.Equal(t, int64(30000), buckets[0].IncomeYER)
	assert.Equal(t, int64(5000), buckets[0].ExpenseYER)
	assert.Equal(t, "2024-06", buckets[1].Period)
	assert.Equal(t, int64(12000), buckets[1].IncomeYER)
}

func TestIncomeByPeriodEmptyRange(t *testing.T) {
	core := newTestCore()
	buckets := core.Reports.IncomeByPeriod(managerCtx(), testNow, testNow.AddDate(0, 1, 0), "day")
	assert.Empty(t, buckets)
}

func TestExpenseByCategory(t *testing.T) {
	core := newTestCore()

	seedLedger(t, core, testNow, models.LedgerPaymentVoucher, models.LedgerOut, 7000)
	seedLedger(t, core, testNow, models.LedgerPaymentVoucher, models.LedgerOut, 3000)
	seedLedger(t, core, testNow, models.LedgerReceipt, models.LedgerOut, 2000)
	seedLedger(t, core, testNow, models.LedgerInvoice, models.LedgerIn, 50000)

	expenses := core.Reports.ExpenseByCategory(managerCtx(), testNow.AddDate(0, 0, -1), testNow.AddDate(0, 0, 1))
	assert.Equal(t, int64(10000), expenses[models.LedgerPaymentVoucher])
	assert.Equal(t, int64(2000), expenses[models.LedgerReceipt])
	assert.NotContains(t, expenses, models.LedgerInvoice)
}

func TestNetByDoctor(t *testing.T) {
	core := newTestCore()
	patient := seedPatient(t, core)
	doctor := seedDoctor(t, core, 40)
	_, batch := seedBatch(t, core, 10)

	seedSession(t, core, patient, doctor, 100000, []models.SessionMaterial{
		{InventoryBatchID: batch.ID, Quantity: 3},
	})

	rows := core.Reports.NetByDoctor(managerCtx(), testNow.AddDate(0, 0, -1), testNow.AddDate(0, 0, 1))
	require.Len(t, rows, 1)
	assert.Equal(t, doctor.ID, rows[0].DoctorID)
	assert.Equal(t, "Dr. Ali", rows[0].DoctorName)
	assert.Equal(t, int64(100000), rows[0].IncomeYER)
	// 40% share of the fee minus the raw consumed quantity.
	assert.Equal(t, int64(40000-3), rows[0].NetAfterCostsYER)
}

func TestCashBalance(t *testing.T) {
	core := newTestCore()

	seedLedger(t, core, testNow, models.LedgerReceipt, models.LedgerIn, 10000)
	seedLedger(t, core, testNow, models.LedgerPaymentVoucher, models.LedgerOut, 7000)

	balance := core.Reports.CashBalance(managerCtx())
	assert.Equal(t, int64(3000), balance.BalanceYER)
	assert.Equal(t, int64(10000), balance.TotalInYER)
	assert.Equal(t, int64(7000), balance.TotalOutYER)
}
