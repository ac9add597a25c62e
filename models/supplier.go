package models

type Supplier struct {
	Base
	Name    string `json:"name" gorm:"not null"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
}

func (Supplier) TableName() string { return "supplier" }

func (s Supplier) WithMeta(b Base) Supplier {
	s.Base = b
	return s
}

func (s Supplier) Clone() Supplier { return s }
