package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "dango/internal/errors"
	"dango/internal/models"
)

// dashboardRows is the number of rows each dashboard table shows.
const dashboardRows = 5

// journalPreviewLen is how many characters of a description the
// dashboard table shows before cutting.
const journalPreviewLen = 15

// dashboardService aggregates recent activity across the three resources.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetSummary returns the user's recent financial entries with their running
// total, recent journal entries with shortened descriptions, and open to-do
// items.
func (s *dashboardService) GetSummary(userID string) (*DashboardSummary, error) {
	recent := []models.FinancialEntry{}
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(dashboardRows).
		Find(&recent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var amounts []decimal.Decimal
	if err := s.db.Model(&models.FinancialEntry{}).
		Where("user_id = ?", userID).
		Pluck("amount", &amounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	var journal []models.JournalEntry
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(dashboardRows).
		Find(&journal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	previews := []JournalPreview{}
	for _, entry := range journal {
		previews = append(previews, JournalPreview{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: truncate(entry.Description, journalPreviewLen),
			Date:        entry.Date,
		})
	}

	openTodos := []TodoWithCategory{}
	if err := s.db.Model(&models.TodoItem{}).
		Select("todo_items.id, todo_items.user_id, todo_items.category_id, categories.name AS category_name, todo_items.description, todo_items.due_date, todo_items.done").
		Joins("INNER JOIN categories ON categories.id = todo_items.category_id").
		Where("todo_items.user_id = ? AND todo_items.done = ?", userID, false).
		Order("todo_items.due_date ASC").
		Limit(dashboardRows).
		Scan(&openTodos).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var openTotal int64
	if err := s.db.Model(&models.TodoItem{}).
		Where("user_id = ? AND done = ?", userID, false).
		Count(&openTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DashboardSummary{
		RecentEntries:  recent,
		TotalAmount:    total,
		RecentJournal:  previews,
		OpenTodos:      openTodos,
		OpenTodosTotal: openTotal,
	}, nil
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
