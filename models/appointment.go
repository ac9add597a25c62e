package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

type Appointment struct {
	Base
	PatientID string            `json:"patientId" gorm:"index;not null"`
	DoctorID  string            `json:"doctorId" gorm:"index;not null"`
	Start     time.Time         `json:"start" gorm:"index;not null"`
	End       time.Time         `json:"end" gorm:"not null"`
	Room      string            `json:"room,omitempty"`
	Status    AppointmentStatus `json:"status" gorm:"type:varchar(20)"`
	Note      string            `json:"note,omitempty"`
}

func (Appointment) TableName() string { return "appointment" }

func (a Appointment) WithMeta(b Base) Appointment {
	a.Base = b
	return a
}

func (a Appointment) Clone() Appointment { return a }
