package models

import "time"

// User is a clinic staff account. Not part of the backup envelope; it is
// persisted only through the SQLite snapshot so logins survive restarts.
type User struct {
	Base
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash
	Name      string     `json:"name" gorm:"not null"`
	Phone     string     `json:"phone,omitempty"`
	Role      UserRole   `json:"role" gorm:"type:varchar(20);not null"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	Active    bool       `json:"active"`
}

func (User) TableName() string { return "user" }

func (u User) WithMeta(b Base) User {
	u.Base = b
	return u
}

func (u User) Clone() User {
	if u.LastLogin != nil {
		last := *u.LastLogin
		u.LastLogin = &last
	}
	return u
}
