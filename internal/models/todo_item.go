package models

import "time"

// TodoItem represents a to-do entry belonging to a category
type TodoItem struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string    `gorm:"type:uuid;not null" json:"category_id"`
	Description string    `gorm:"not null" json:"description"`
	DueDate     time.Time `gorm:"type:date;not null" json:"due_date"`
	Done        bool      `gorm:"not null;default:false" json:"done"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
