package models

import "time"

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceVoid    InvoiceStatus = "void"
)

// Invoice totals are integer YER. Status is derived from (paid, total)
// except for void, which is a terminal administrative marker.
type Invoice struct {
	Base
	PatientID       string        `json:"patientId" gorm:"index;not null"`
	Date            time.Time     `json:"date" gorm:"index;not null"`
	TotalYER        int64         `json:"totalYER" gorm:"column:total_yer;not null"`
	PaidYER         int64         `json:"paidYER" gorm:"column:paid_yer;not null"`
	Status          InvoiceStatus `json:"status" gorm:"type:varchar(10)"`
	LinkedSessionID string        `json:"linkedSessionId,omitempty" gorm:"index"`
	Notes           string        `json:"notes,omitempty"`
}

func (Invoice) TableName() string { return "invoice" }

func (i Invoice) WithMeta(b Base) Invoice {
	i.Base = b
	return i
}

func (i Invoice) Clone() Invoice { return i }
