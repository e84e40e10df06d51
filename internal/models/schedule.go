package models

import "time"

// ScheduleEvent is a shared calendar event. The schedule is append-only:
// there are no update or delete routes.
type ScheduleEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:16;not null" json:"date"`
	Text      string    `gorm:"size:255;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
