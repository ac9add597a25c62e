package models

import (
	"slices"
	"time"
)

// Session is a single clinical visit: procedures performed, teeth treated,
// materials consumed from inventory batches, and the fee to invoice.
type Session struct {
	Base
	PatientID       string       `json:"patientId" gorm:"index;not null"`
	DoctorID        string       `json:"doctorId" gorm:"index;not null"`
	Date            time.Time    `json:"date" gorm:"not null"`
	Procedures      StringList   `json:"procedures" gorm:"column:procedures_json;type:text"`
	Teeth           IntList      `json:"teeth" gorm:"column:teeth_json;type:text"`
	Materials       MaterialList `json:"materials" gorm:"column:materials_json;type:text"`
	DurationMinutes int          `json:"durationMinutes" gorm:"column:duration_min"`
	FeeYER          int64        `json:"feeYER" gorm:"column:fee_yer;not null"`
	Notes           string       `json:"notes,omitempty"`
}

func (Session) TableName() string { return "session" }

func (s Session) WithMeta(b Base) Session {
	s.Base = b
	return s
}

func (s Session) Clone() Session {
	s.Procedures = slices.Clone(s.Procedures)
	s.Teeth = slices.Clone(s.Teeth)
	s.Materials = slices.Clone(s.Materials)
	return s
}
