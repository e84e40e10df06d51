package models

// ActionLog records a mutation for later audit viewing. Appended
// best-effort after the mutation succeeds; never updated or deleted.
// Timestamp is an RFC3339 string so newest-first ordering is a plain
// string sort.
type ActionLog struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Action      string `gorm:"size:255;not null" json:"action"`
	PerformedBy string `gorm:"size:64;index;not null" json:"performedBy"`
	Timestamp   string `gorm:"size:40;index;not null" json:"timestamp"`
}
