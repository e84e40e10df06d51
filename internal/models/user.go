package models

import "time"

// Roles a user account can hold.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User represents an application user. Usernames are stored trimmed and
// lowercased so uniqueness is case-insensitive.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:employee" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
