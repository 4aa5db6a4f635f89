package services

import (
	"time"

	"github.com/shopspring/decimal"

	"dango/internal/models"
	"dango/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// EntryList is a page of financial entries plus the exact sum of the
// amount column across ALL of the user's entries, not just the page.
type EntryList struct {
	pagination.PageResponse[models.FinancialEntry]
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// DailyEntries groups a day's financial entries with their subtotal.
type DailyEntries struct {
	Date    string                  `json:"date"`
	Total   decimal.Decimal         `json:"total"`
	Entries []models.FinancialEntry `json:"entries"`
}

// EntryServicer defines the contract for financial entry business logic.
type EntryServicer interface {
	CreateEntry(userID, title, category string, entryType models.EntryType, amount decimal.Decimal, date time.Time, clock string) (*models.FinancialEntry, error)
	GetUserEntries(userID, search string, page pagination.PageRequest) (*EntryList, error)
	GetDailySummary(userID string) ([]DailyEntries, error)
	DeleteEntry(userID, entryID string) (*models.FinancialEntry, error)
}

// JournalServicer defines the contract for journal entry business logic.
type JournalServicer interface {
	CreateEntry(userID, title, description string, date time.Time) (*models.JournalEntry, error)
	GetUserEntries(userID string) ([]models.JournalEntry, error)
	GetEntryByID(userID, entryID string) (*models.JournalEntry, error)
	UpdateEntry(userID, entryID string, title, description *string, date *time.Time) (*models.JournalEntry, error)
	DeleteEntry(userID, entryID string) (*models.JournalEntry, error)
}

// CategoryServicer defines the contract for category business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
	DeleteCategory(userID, categoryID string) (*models.Category, error)
}

// TodoWithCategory is a to-do row joined with its category name for list views.
type TodoWithCategory struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"due_date"`
	Done         bool      `json:"done"`
}

// TodoServicer defines the contract for to-do item business logic.
type TodoServicer interface {
	CreateTodo(userID, categoryID, description string, dueDate time.Time, done bool) (*models.TodoItem, error)
	GetUserTodos(userID string) ([]TodoWithCategory, error)
	UpdateTodo(userID, todoID string, done *bool, description *string, dueDate *time.Time) (*models.TodoItem, error)
	DeleteTodo(userID, todoID string) (*models.TodoItem, error)
}

// JournalPreview is a journal entry with its description shortened for
// dashboard tables.
type JournalPreview struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// DashboardSummary aggregates the three resource types for the landing page.
type DashboardSummary struct {
	RecentEntries  []models.FinancialEntry `json:"recent_entries"`
	TotalAmount    decimal.Decimal         `json:"totalAmount"`
	RecentJournal  []JournalPreview        `json:"recent_journal"`
	OpenTodos      []TodoWithCategory      `json:"open_todos"`
	OpenTodosTotal int64                   `json:"open_todos_total"`
}

// DashboardServicer defines the contract for the dashboard aggregation.
type DashboardServicer interface {
	GetSummary(userID string) (*DashboardSummary, error)
}
