package models

import "time"

// JournalEntry represents a dated free-text journal record
type JournalEntry struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
}
