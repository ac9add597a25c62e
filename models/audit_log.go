package models

import (
	"maps"
	"time"
)

// AuditLog is append-only: rows are never updated or deleted.
type AuditLog struct {
	Base
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	User      string    `json:"user"`
	Action    string    `json:"action" gorm:"index"`
	Entity    string    `json:"entity" gorm:"index"`
	EntityID  string    `json:"entityId" gorm:"index"`
	Delta     JSONMap   `json:"delta" gorm:"type:text"`
}

func (AuditLog) TableName() string { return "audit_log" }

func (l AuditLog) WithMeta(b Base) AuditLog {
	l.Base = b
	return l
}

func (l AuditLog) Clone() AuditLog {
	l.Delta = maps.Clone(l.Delta)
	return l
}
