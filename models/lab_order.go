package models

import "time"

type LabOrderStatus string

const (
	LabOrderDraft     LabOrderStatus = "draft"
	LabOrderSent      LabOrderStatus = "sent"
	LabOrderReceived  LabOrderStatus = "received"
	LabOrderCancelled LabOrderStatus = "cancelled"
)

type LabOrder struct {
	Base
	PatientID string         `json:"patientId" gorm:"index;not null"`
	DoctorID  string         `json:"doctorId" gorm:"index;not null"`
	Type      string         `json:"type"`
	SentDate  time.Time      `json:"sentDate"`
	DueDate   *time.Time     `json:"dueDate,omitempty"`
	LabName   string         `json:"labName,omitempty"`
	CostYER   int64          `json:"costYER,omitempty" gorm:"column:cost_yer"`
	Status    LabOrderStatus `json:"status" gorm:"type:varchar(10)"`
	Notes     string         `json:"notes,omitempty"`
}

func (LabOrder) TableName() string { return "lab_order" }

func (o LabOrder) WithMeta(b Base) LabOrder {
	o.Base = b
	return o
}

func (o LabOrder) Clone() LabOrder {
	if o.DueDate != nil {
		due := *o.DueDate
		o.DueDate = &due
	}
	return o
}
