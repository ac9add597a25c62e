package models

import "time"

type Patient struct {
	Base
	Code         string     `json:"code" gorm:"uniqueIndex;not null"`
	FullNameAr   string     `json:"fullNameAr" gorm:"index;not null"`
	FullNameEn   string     `json:"fullNameEn,omitempty"`
	Gender       string     `json:"gender"`
	DOB          *time.Time `json:"dob,omitempty"`
	Phone        string     `json:"phone,omitempty" gorm:"index"`
	Address      string     `json:"address,omitempty"`
	NotesMedical string     `json:"notesMedical,omitempty"`
	DoctorID     string     `json:"doctorId,omitempty" gorm:"index"`
}

func (Patient) TableName() string { return "patient" }

func (p Patient) WithMeta(b Base) Patient {
	p.Base = b
	return p
}

func (p Patient) Clone() Patient {
	if p.DOB != nil {
		dob := *p.DOB
		p.DOB = &dob
	}
	return p
}
