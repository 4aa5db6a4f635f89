package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "dango/internal/errors"
	"dango/internal/models"
	"dango/internal/pagination"
)

// entryService handles financial entry business logic.
type entryService struct {
	db *gorm.DB
}

// NewEntryService creates a new EntryServicer.
func NewEntryService(db *gorm.DB) EntryServicer {
	return &entryService{db: db}
}

// CreateEntry records a new income or expense entry. The stored amount is
// normalized so its sign matches the entry type: "in" entries are positive,
// "out" entries negative, regardless of the sign the caller submitted.
func (s *entryService) CreateEntry(
	userID string,
	title string,
	category string,
	entryType models.EntryType,
	amount decimal.Decimal,
	date time.Time,
	clock string,
) (*models.FinancialEntry, error) {
	if title == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and category are required")
	}
	if entryType != models.EntryTypeIn && entryType != models.EntryTypeOut {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be \"in\" or \"out\"")
	}
	if amount.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required")
	}

	amount = amount.Abs()
	if entryType == models.EntryTypeOut {
		amount = amount.Neg()
	}

	entry := &models.FinancialEntry{
		UserID:   userID,
		Title:    title,
		Category: category,
		Type:     entryType,
		Amount:   amount,
		Date:     date,
		Time:     clock,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entry, nil
}

// GetUserEntries retrieves a page of the user's entries, optionally filtered
// by a substring match over title and category. TotalAmount is always the
// exact sum over the user's full entry set, so the running total does not
// shift with the active filter or page.
func (s *entryService) GetUserEntries(userID, search string, page pagination.PageRequest) (*EntryList, error) {
	page.Defaults()

	base := s.db.Model(&models.FinancialEntry{}).Where("user_id = ?", userID)
	if search != "" {
		pattern := "%" + search + "%"
		base = base.Where("title LIKE ? OR category LIKE ?", pattern, pattern)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.FinancialEntry
	if err := base.Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total, err := s.sumUserEntries(userID)
	if err != nil {
		return nil, err
	}

	return &EntryList{
		PageResponse: pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems),
		TotalAmount:  total,
	}, nil
}

// GetDailySummary groups the user's entries by calendar day, newest day
// first, with a per-day subtotal.
func (s *entryService) GetDailySummary(userID string) ([]DailyEntries, error) {
	var entries []models.FinancialEntry
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	days := []DailyEntries{}
	index := map[string]int{}
	for _, entry := range entries {
		key := entry.Date.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DailyEntries{Date: key})
		}
		days[i].Entries = append(days[i].Entries, entry)
		days[i].Total = days[i].Total.Add(entry.Amount)
	}

	return days, nil
}

// DeleteEntry removes an entry by ID, scoped to the owning user, and returns
// the deleted row.
func (s *entryService) DeleteEntry(userID, entryID string) (*models.FinancialEntry, error) {
	var entry models.FinancialEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// sumUserEntries adds up the amount column across all of a user's entries.
// Decimal addition keeps the total exact and order-independent.
func (s *entryService) sumUserEntries(userID string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := s.db.Model(&models.FinancialEntry{}).
		Where("user_id = ?", userID).
		Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
