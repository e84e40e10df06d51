package models

import "time"

// Todo is a personal to-do item, visible and mutable only by its owner.
// Owner is the username carried in the access token.
type Todo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	User      string    `gorm:"size:64;index;not null" json:"user"`
	Text      string    `gorm:"size:255;not null" json:"text"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
