package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "dango/internal/errors"
	"dango/internal/models"
)

// journalService handles journal entry business logic.
type journalService struct {
	db *gorm.DB
}

// NewJournalService creates a new JournalServicer.
func NewJournalService(db *gorm.DB) JournalServicer {
	return &journalService{db: db}
}

// CreateEntry creates a new journal entry
func (s *journalService) CreateEntry(userID, title, description string, date time.Time) (*models.JournalEntry, error) {
	if title == "" || description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and description are required")
	}

	entry := &models.JournalEntry{
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// GetUserEntries retrieves all of a user's journal entries, newest date first.
func (s *journalService) GetUserEntries(userID string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// GetEntryByID retrieves a single journal entry scoped to the owning user.
func (s *journalService) GetEntryByID(userID, entryID string) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJournalEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// UpdateEntry applies a partial patch. Only non-nil fields are written;
// supplying no fields at all is a client error.
func (s *journalService) UpdateEntry(userID, entryID string, title, description *string, date *time.Time) (*models.JournalEntry, error) {
	entry, err := s.GetEntryByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if date != nil {
		updates["date"] = *date
	}

	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No fields to update")
	}

	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// DeleteEntry removes a journal entry and returns the deleted row.
func (s *journalService) DeleteEntry(userID, entryID string) (*models.JournalEntry, error) {
	entry, err := s.GetEntryByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}
