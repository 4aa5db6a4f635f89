package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dango/internal/errors"
	"dango/internal/models"
	"dango/internal/pagination"
	"dango/internal/services"
)

// EntryHandler handles financial entry requests
type EntryHandler struct {
	entryService services.EntryServicer
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService services.EntryServicer) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntryRequest represents the request payload for creating a financial entry
type CreateEntryRequest struct {
	Title    string          `json:"title" binding:"required,max=255"`
	Category string          `json:"category" binding:"required,max=100"`
	Type     string          `json:"type" binding:"required,entry_type"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required,calendar_date"`
	Time     string          `json:"time" binding:"required,clock_time"`
}

// ListEntriesRequest represents the query parameters for listing entries
type ListEntriesRequest struct {
	Search string `form:"search"`
	pagination.PageRequest
}

// CreateEntry handles the creation of a new financial entry
// @Summary     Create a financial entry
// @Description Record a new income or expense entry
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateEntryRequest true "Entry details"
// @Success     201 {object} models.FinancialEntry "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date"))
		return
	}

	entry, err := h.entryService.CreateEntry(userID, req.Title, req.Category,
		models.EntryType(req.Type), req.Amount, date, req.Time)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Financial entry created",
		"data":    entry,
	})
}

// GetUserEntries handles the listing of the user's financial entries
// @Summary     List financial entries
// @Description Get the user's financial entries with search and pagination. The totalAmount field is the sum over all of the user's entries.
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       search query string false "Substring filter over title and category"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} services.EntryList "Page of entries plus totalAmount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries [get]
func (h *EntryHandler) GetUserEntries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ListEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	list, err := h.entryService.GetUserEntries(userID, req.Search, req.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetDailySummary handles the grouped-by-day entry view
// @Summary     Daily entry summary
// @Description Get the user's entries grouped by calendar day, newest first, with per-day subtotals
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.DailyEntries "Entries grouped by day"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries/daily [get]
func (h *EntryHandler) GetDailySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	days, err := h.entryService.GetDailySummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": days})
}

// DeleteEntry handles deletion of a financial entry
// @Summary     Delete a financial entry
// @Description Delete a financial entry by ID
// @Tags        entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} models.FinancialEntry "Deleted entry"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
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

	entry, err := h.entryService.DeleteEntry(userID, entryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Financial entry deleted",
		"data":    entry,
	})
}
