package model

import (
	"strings"
	"time"
)

// Role names recognised by the authorization layer.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a registered account. The username is the identity and
// is never changed after registration.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Roles        string    `json:"roles" gorm:"size:255;not null;default:'USER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleList returns the user's roles as a slice.
func (u *User) RoleList() []string {
	if u.Roles == "" {
		return []string{RoleUser}
	}
	return strings.Split(u.Roles, ",")
}
