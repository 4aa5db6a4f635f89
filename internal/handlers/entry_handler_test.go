package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dango/internal/errors"
	"dango/internal/models"
	"dango/internal/pagination"
	"dango/internal/services"
)

// --- mock entry service ---

type mockEntryService struct {
	createEntryFn     func(userID, title, category string, entryType models.EntryType, amount decimal.Decimal, date time.Time, clock string) (*models.FinancialEntry, error)
	getUserEntriesFn  func(userID, search string, page pagination.PageRequest) (*services.EntryList, error)
	getDailySummaryFn func(userID string) ([]services.DailyEntries, error)
	deleteEntryFn     func(userID, entryID string) (*models.FinancialEntry, error)
}

func (m *mockEntryService) CreateEntry(userID, title, category string, entryType models.EntryType, amount decimal.Decimal, date time.Time, clock string) (*models.FinancialEntry, error) {
	if m.createEntryFn != nil {
		return m.createEntryFn(userID, title, category, entryType, amount, date, clock)
	}
	return &models.FinancialEntry{}, nil
}

func (m *mockEntryService) GetUserEntries(userID, search string, page pagination.PageRequest) (*services.EntryList, error) {
	if m.getUserEntriesFn != nil {
		return m.getUserEntriesFn(userID, search, page)
	}
	return &services.EntryList{
		PageResponse: pagination.NewPageResponse([]models.FinancialEntry{}, 1, 20, 0),
		TotalAmount:  decimal.Zero,
	}, nil
}

func (m *mockEntryService) GetDailySummary(userID string) ([]services.DailyEntries, error) {
	if m.getDailySummaryFn != nil {
		return m.getDailySummaryFn(userID)
	}
	return []services.DailyEntries{}, nil
}

func (m *mockEntryService) DeleteEntry(userID, entryID string) (*models.FinancialEntry, error) {
	if m.deleteEntryFn != nil {
		return m.deleteEntryFn(userID, entryID)
	}
	return &models.FinancialEntry{}, nil
}

var _ services.EntryServicer = (*mockEntryService)(nil)

func setupEntryRouter(handler *EntryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/entries", handler.CreateEntry)
	auth.GET("/entries", handler.GetUserEntries)
	auth.GET("/entries/daily", handler.GetDailySummary)
	auth.DELETE("/entries/:id", handler.DeleteEntry)
	return r
}

func TestEntryHandler_CreateEntry(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		entrySvc := &mockEntryService{
			createEntryFn: func(_, title, category string, entryType models.EntryType, amount decimal.Decimal, _ time.Time, _ string) (*models.FinancialEntry, error) {
				return &models.FinancialEntry{
					Base:     models.Base{ID: "01900000-0000-7000-8000-0000000000aa"},
					Title:    title,
					Category: category,
					Type:     entryType,
					Amount:   amount,
				}, nil
			},
		}
		handler := NewEntryHandler(entrySvc)
		r := setupEntryRouter(handler)

		rec := doRequest(r, "POST", "/entries",
			`{"title":"Lunch","category":"Food","type":"out","amount":12.50,"date":"2024-03-01","time":"12:30"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Financial entry created" {
			t.Errorf("unexpected message: %v", result["message"])
		}
		data := result["data"].(map[string]interface{})
		if data["title"] != "Lunch" {
			t.Errorf("expected title Lunch, got %v", data["title"])
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := setupEntryRouter(handler)

		rec := doRequest(r, "POST", "/entries",
			`{"title":"Lunch","category":"Food","type":"sideways","amount":12.50,"date":"2024-03-01","time":"12:30"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := setupEntryRouter(handler)

		rec := doRequest(r, "POST", "/entries",
			`{"title":"Lunch","category":"Food","type":"out","amount":12.50,"date":"03/01/2024","time":"12:30"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad time", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := setupEntryRouter(handler)

		rec := doRequest(r, "POST", "/entries",
			`{"title":"Lunch","category":"Food","type":"out","amount":12.50,"date":"2024-03-01","time":"25:99"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := setupEntryRouter(handler)

		rec := doRequest(r, "POST", "/entries", `{"title":"Lunch"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := gin.New()
		r.POST("/entries", handler.CreateEntry)

		rec := doRequest(r, "POST", "/entries",
			`{"title":"Lunch","category":"Food","type":"out","amount":12.50,"date":"2024-03-01","time":"12:30"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestEntryHandler_GetUserEntries(t *testing.T) {
	t.Run("returns 200 with page and total", func(t *testing.T) {
		entrySvc := &mockEntryService{
			getUserEntriesFn: func(_, _ string, _ pagination.PageRequest) (*services.EntryList, error) {
				return &services.EntryList{
					PageResponse: pagination.NewPageResponse([]models.FinancialEntry{
						{Base: models.Base{ID: "01900000-0000-7000-8000-0000000000aa"}, Title: "Salary", Amount: decimal.NewFromInt(100)},
						{Base: models.Base{ID: "01900000-0000-7000-8000-0000000000ab"}, Title: "Lunch", Amount: decimal.NewFromInt(-50)},
					}, 1, 20, 2),
					TotalAmount: decimal.NewFromInt(50),
				}, nil
			},
		}
		handler := NewEntryHandler(entrySvc)
		r := setupEntryRouter(handler)

		rec := doRequest(r, "GET", "/entries", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 entries, got %d", len(data))
		}
		if result["totalAmount"] != "50" {
			t.Errorf("expected totalAmount 50, got %v", result["totalAmount"])
		}
	})

	t.Run("passes search and pagination through", func(t *testing.T) {
		var capturedSearch string
		var capturedPage pagination.PageRequest
		entrySvc := &mockEntryService{
			getUserEntriesFn: func(_, search string, page pagination.PageRequest) (*services.EntryList, error) {
				capturedSearch = search
				capturedPage = page
				return &services.EntryList{
					PageResponse: pagination.NewPageResponse([]models.FinancialEntry{}, page.Page, page.PageSize, 0),
					TotalAmount:  decimal.Zero,
				}, nil
			},
		}
		handler := NewEntryHandler(entrySvc)
		r := setupEntryRouter(handler)

		doRequest(r, "GET", "/entries?search=coffee&page=2&page_size=5", "")

		if capturedSearch != "coffee" {
			t.Errorf("expected search coffee, got %q", capturedSearch)
		}
		if capturedPage.Page != 2 || capturedPage.PageSize != 5 {
			t.Errorf("expected page 2 size 5, got page %d size %d", capturedPage.Page, capturedPage.PageSize)
		}
	})

	t.Run("returns 400 on invalid page", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := setupEntryRouter(handler)

		rec := doRequest(r, "GET", "/entries?page=-1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestEntryHandler_GetDailySummary(t *testing.T) {
	t.Run("returns 200 with grouped days", func(t *testing.T) {
		entrySvc := &mockEntryService{
			getDailySummaryFn: func(_ string) ([]services.DailyEntries, error) {
				return []services.DailyEntries{
					{Date: "2024-03-02", Total: decimal.NewFromInt(90)},
					{Date: "2024-03-01", Total: decimal.NewFromInt(-30)},
				}, nil
			},
		}
		handler := NewEntryHandler(entrySvc)
		r := setupEntryRouter(handler)

		rec := doRequest(r, "GET", "/entries/daily", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		days := result["data"].([]interface{})
		if len(days) != 2 {
			t.Fatalf("expected 2 days, got %d", len(days))
		}
		first := days[0].(map[string]interface{})
		if first["date"] != "2024-03-02" {
			t.Errorf("expected newest day first, got %v", first["date"])
		}
	})
}

func TestEntryHandler_DeleteEntry(t *testing.T) {
	t.Run("returns 200 with deleted entry", func(t *testing.T) {
		entrySvc := &mockEntryService{
			deleteEntryFn: func(_, entryID string) (*models.FinancialEntry, error) {
				return &models.FinancialEntry{Base: models.Base{ID: entryID}, Title: "Lunch"}, nil
			},
		}
		handler := NewEntryHandler(entrySvc)
		r := setupEntryRouter(handler)

		rec := doRequest(r, "DELETE", "/entries/01900000-0000-7000-8000-0000000000aa", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Financial entry deleted" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		handler := NewEntryHandler(&mockEntryService{})
		r := setupEntryRouter(handler)

		rec := doRequest(r, "DELETE", "/entries/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		entrySvc := &mockEntryService{
			deleteEntryFn: func(_, _ string) (*models.FinancialEntry, error) {
				return nil, apperrors.ErrEntryNotFound
			},
		}
		handler := NewEntryHandler(entrySvc)
		r := setupEntryRouter(handler)

		rec := doRequest(r, "DELETE", "/entries/01900000-0000-7000-8000-0000000000aa", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Financial entry not found")
	})
}
