package models

type Doctor struct {
	Base
	Name                string `json:"name" gorm:"not null"`
	Phone               string `json:"phone,omitempty"`
	Specialty           string `json:"specialty,omitempty"`
	Active              bool   `json:"active"`
	RevenueSharePercent int    `json:"revenueSharePercent" gorm:"column:revenue_share_percent"`
}

func (Doctor) TableName() string { return "doctor" }

func (d Doctor) WithMeta(b Base) Doctor {
	d.Base = b
	return d
}

func (d Doctor) Clone() Doctor { return d }
