package models

import "time"

type LedgerDirection string

const (
	LedgerIn  LedgerDirection = "in"
	LedgerOut LedgerDirection = "out"
)

// LedgerType names the source transaction kind a ledger entry balances.
type LedgerType string

const (
	LedgerInvoice             LedgerType = "invoice"
	LedgerReceipt             LedgerType = "receipt"
	LedgerPaymentVoucher      LedgerType = "payment_voucher"
	LedgerInventoryAdjustment LedgerType = "inventory_adjustment"
	LedgerLabOrder            LedgerType = "lab_order"
	LedgerSession             LedgerType = "session"
)

// LedgerEntry is an immutable record of a single directional cash movement.
// Entries are only ever appended; voiding posts a reversing entry.
type LedgerEntry struct {
	Base
	Date        time.Time       `json:"date" gorm:"index;not null"`
	Type        LedgerType      `json:"type" gorm:"type:varchar(30)"`
	ReferenceID string          `json:"referenceId,omitempty" gorm:"index"`
	Direction   LedgerDirection `json:"direction" gorm:"type:varchar(3);not null"`
	AmountYER   int64           `json:"amountYER" gorm:"column:amount_yer;not null"`
	Note        string          `json:"note,omitempty"`
}

func (LedgerEntry) TableName() string { return "ledger" }

func (e LedgerEntry) WithMeta(b Base) LedgerEntry {
	e.Base = b
	return e
}

func (e LedgerEntry) Clone() LedgerEntry { return e }
