package models

import "time"

// Receipt records incoming cash. When InvoiceID is set the amount counts
// toward that invoice's paidYER; otherwise it is miscellaneous income.
type Receipt struct {
	Base
	InvoiceID string    `json:"invoiceId,omitempty" gorm:"index"`
	Date      time.Time `json:"date" gorm:"not null"`
	AmountYER int64     `json:"amountYER" gorm:"column:amount_yer;not null"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	CreatedBy string    `json:"createdBy"`
	Voided    bool      `json:"voided"`
}

func (Receipt) TableName() string { return "receipt" }

func (r Receipt) WithMeta(b Base) Receipt {
	r.Base = b
	return r
}

func (r Receipt) Clone() Receipt { return r }

// PaymentVoucher records outgoing cash. Always standalone.
type PaymentVoucher struct {
	Base
	Date      time.Time `json:"date" gorm:"not null"`
	AmountYER int64     `json:"amountYER" gorm:"column:amount_yer;not null"`
	Payee     string    `json:"payee"`
	Reason    string    `json:"reason"`
	CreatedBy string    `json:"createdBy"`
	Voided    bool      `json:"voided"`
}

func (PaymentVoucher) TableName() string { return "payment_voucher" }

func (v PaymentVoucher) WithMeta(b Base) PaymentVoucher {
	v.Base = b
	return v
}

func (v PaymentVoucher) Clone() PaymentVoucher { return v }
