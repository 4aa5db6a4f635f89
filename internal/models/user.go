package models

// User represents the user model in the database
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`

	FinancialEntries []FinancialEntry `gorm:"foreignKey:UserID" json:"financial_entries,omitempty"`
	JournalEntries   []JournalEntry   `gorm:"foreignKey:UserID" json:"journal_entries,omitempty"`
	Categories       []Category       `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	TodoItems        []TodoItem       `gorm:"foreignKey:UserID" json:"todo_items,omitempty"`
}
