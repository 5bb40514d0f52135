package model

import (
	"time"
)

// DefaultRole is granted to every user and always present in the role set.
const DefaultRole = "ROLE_USER"

// User represents a registered user account.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Surname      string     `json:"surname" gorm:"size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Roles        StringList `json:"roles" gorm:"type:json"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RoleNames returns the user's roles, always including DefaultRole.
func (u *User) RoleNames() []string {
	for _, r := range u.Roles {
		if r == DefaultRole {
			return u.Roles
		}
	}
	return append(append([]string{}, u.Roles...), DefaultRole)
}
