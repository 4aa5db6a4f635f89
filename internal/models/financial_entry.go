package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType represents the direction of a financial entry
type EntryType string

const (
	EntryTypeIn  EntryType = "in"
	EntryTypeOut EntryType = "out"
)

// FinancialEntry represents a single income or expense record.
// Amount is signed: entries of type "out" carry a negative amount so that
// summing a user's entries yields their running total directly.
type FinancialEntry struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title    string          `gorm:"not null" json:"title"`
	Category string          `gorm:"not null" json:"category"`
	Type     EntryType       `gorm:"not null" json:"type"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date     time.Time       `gorm:"type:date;not null" json:"date"`
	Time     string          `gorm:"size:5;not null" json:"time"`
}
