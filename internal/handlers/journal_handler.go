package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dango/internal/errors"
	"dango/internal/services"
)

// JournalHandler handles journal entry requests
type JournalHandler struct {
	journalService services.JournalServicer
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService services.JournalServicer) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// CreateJournalRequest represents the request payload for creating a journal entry
type CreateJournalRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,calendar_date"`
}

// UpdateJournalRequest represents the partial-patch payload. Absent fields
// are left untouched; at least one field must be supplied.
type UpdateJournalRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Date        *string `json:"date" binding:"omitempty,calendar_date"`
}

// CreateEntry handles the creation of a new journal entry
// @Summary     Create a journal entry
// @Description Record a new journal entry
// @Tags        journal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateJournalRequest true "Journal entry details"
// @Success     201 {object} models.JournalEntry "Journal entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal [post]
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	entry, err := h.journalService.CreateEntry(userID, req.Title, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Journal entry created",
		"data":    entry,
	})
}

// GetUserEntries handles listing the user's journal entries
// @Summary     List journal entries
// @Description Get all of the user's journal entries, newest date first
// @Tags        journal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.JournalEntry "Journal entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal [get]
func (h *JournalHandler) GetUserEntries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.journalService.GetUserEntries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// GetEntryByID handles retrieval of a single journal entry
// @Summary     Get journal entry by ID
// @Description Get a single journal entry. The data field is a one-element array for consistency with list responses.
// @Tags        journal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Journal entry ID"
// @Success     200 {object} models.JournalEntry "Journal entry"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal/{id} [get]
func (h *JournalHandler) GetEntryByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.journalService.GetEntryByID(userID, entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Single reads return a one-element array to keep the data field shape
	// consistent across endpoints.
	c.JSON(http.StatusOK, gin.H{"data": []interface{}{entry}})
}

// UpdateEntry handles a partial update of a journal entry
// @Summary     Update a journal entry
// @Description Patch any subset of title, description, and date. At least one field is required.
// @Tags        journal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Journal entry ID"
// @Param       request body UpdateJournalRequest true "Fields to update"
// @Success     200 {object} models.JournalEntry "Updated entry"
// @Failure     400 {object} ErrorResponse "Invalid input or no fields supplied"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal/{id} [patch]
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
			return
		}
		date = &parsed
	}

	entry, err := h.journalService.UpdateEntry(userID, entryID, req.Title, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Journal updated",
		"data":    entry,
	})
}

// DeleteEntry handles deletion of a journal entry
// @Summary     Delete a journal entry
// @Description Delete a journal entry by ID
// @Tags        journal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Journal entry ID"
// @Success     200 {object} models.JournalEntry "Deleted entry"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /journal/{id} [delete]
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, err := h.journalService.DeleteEntry(userID, entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Journal entry deleted",
		"data":    entry,
	})
}
