package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"dango/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestEntry creates a financial entry of the given type and amount.
// The amount is stored as given; sign normalization belongs to the service.
func CreateTestEntry(t *testing.T, db *gorm.DB, userID string, entryType models.EntryType, amount decimal.Decimal) *models.FinancialEntry {
	t.Helper()

	entry := &models.FinancialEntry{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Entry %d", nextID()),
		Category: "Misc",
		Type:     entryType,
		Amount:   amount,
		Date:     time.Now().Truncate(24 * time.Hour),
		Time:     "12:00",
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreateTestJournalEntry creates a journal entry dated the given day.
func CreateTestJournalEntry(t *testing.T, db *gorm.DB, userID string, date time.Time) *models.JournalEntry {
	t.Helper()

	entry := &models.JournalEntry{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Journal %d", nextID()),
		Description: "Dear diary",
		Date:        date,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test journal entry: %v", err)
	}
	return entry
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTodo creates a to-do item in the given category.
func CreateTestTodo(t *testing.T, db *gorm.DB, userID, categoryID string) *models.TodoItem {
	t.Helper()

	todo := &models.TodoItem{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test Todo %d", nextID()),
		DueDate:     time.Now().Truncate(24 * time.Hour),
	}
	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create test todo: %v", err)
	}
	return todo
}
