package models

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidContact is returned by the store when a unit's contact number
// does not look like a phone number.
var ErrInvalidContact = errors.New("invalid contact number format")

// digits, +, -, spaces; 6 to 15 characters
var contactRe = regexp.MustCompile(`^[0-9+\-\s]{6,15}$`)

// Unit is an organizational unit in the directory. Name uniqueness is
// case-insensitive (enforced in the handlers via LOWER(name) lookups);
// entries reference units by name without a foreign key.
type Unit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Contact   string    `gorm:"size:32;not null" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave validates the contact format at the persistence layer, so a
// bad number is rejected no matter which path writes the record.
func (u *Unit) BeforeSave(tx *gorm.DB) error {
	if !contactRe.MatchString(u.Contact) {
		return ErrInvalidContact
	}
	return nil
}
