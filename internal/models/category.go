package models

// Category represents a user-defined to-do category
type Category struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	TodoItems []TodoItem `gorm:"foreignKey:CategoryID" json:"todo_items,omitempty"`
}
