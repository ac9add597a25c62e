package models

import (
	"time"
)

// UserRole is the staff role carried in the auth token. The manager is
// unrestricted; the secretary has an explicit allow-list of actions.
type UserRole string

const (
	RoleManager   UserRole = "manager"
	RoleSecretary UserRole = "secretary"
)

// Base is embedded by every persisted entity. ID and both timestamps are
// assigned by the repository on write, never by callers.
type Base struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta returns the entity metadata. Promoted onto every entity via embedding.
func (b Base) Meta() Base {
	return b
}
