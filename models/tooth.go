package models

// ToothStatus is a catalog entry for the dental chart (e.g. sound, filled,
// extracted), referenced by PatientTooth rows.
type ToothStatus struct {
	Base
	Code      string `json:"code" gorm:"uniqueIndex;not null"`
	LabelAr   string `json:"labelAr" gorm:"not null"`
	LabelEn   string `json:"labelEn,omitempty"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

func (ToothStatus) TableName() string { return "tooth_status" }

func (t ToothStatus) WithMeta(b Base) ToothStatus {
	t.Base = b
	return t
}

func (t ToothStatus) Clone() ToothStatus { return t }

// PatientTooth maps one tooth (FDI notation) of one patient to a status.
// At most one row exists per (patient, tooth number); writes upsert.
type PatientTooth struct {
	Base
	PatientID   string `json:"patientId" gorm:"index;not null"`
	ToothNumber int    `json:"toothNumber" gorm:"not null"`
	StatusID    string `json:"statusId"`
	Notes       string `json:"notes,omitempty"`
}

func (PatientTooth) TableName() string { return "patient_tooth" }

func (t PatientTooth) WithMeta(b Base) PatientTooth {
	t.Base = b
	return t
}

func (t PatientTooth) Clone() PatientTooth { return t }
