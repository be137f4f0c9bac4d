// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role defines a user's privilege level.
type Role string

const (
	// RoleUser is the default role for registered members.
	RoleUser Role = "user"
	// RoleModerator can review flagged forum content.
	RoleModerator Role = "moderator"
	// RoleAdmin manages the volunteer directory and member roles.
	RoleAdmin Role = "admin"
)

// UnknownAuthor is the display sentinel for an author record that no longer
// resolves. Display code renders it instead of failing the page.
const UnknownAuthor = "Unknown"

// User represents a registered member of the WeCare platform.
//
// Password holds the bcrypt digest only; plaintext never reaches the
// persistence layer.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// IsAdmin reports whether the user may manage the volunteer directory.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
