// Package models contains data structures for the application's domain models.
package models

import "time"

// Role defines the authorization level of a user.
type Role string

const (
	// RoleEmployee is the default role; employees file and cancel their own requests.
	RoleEmployee Role = "EMPLOYEE"
	// RoleAdmin may review requests and manage the item catalog.
	RoleAdmin Role = "ADMIN"
)

// User represents an account that can authenticate against the API.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'EMPLOYEE'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
