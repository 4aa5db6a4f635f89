package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dango/internal/errors"
	"dango/internal/models"
	"dango/internal/services"
)

// --- mock dashboard service ---

type mockDashboardService struct {
	getSummaryFn func(userID string) (*services.DashboardSummary, error)
}

func (m *mockDashboardService) GetSummary(userID string) (*services.DashboardSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(userID)
	}
	return &services.DashboardSummary{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", injectUserID(testUserID), handler.GetSummary)
	return r
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	t.Run("returns 200 with all sections", func(t *testing.T) {
		dashSvc := &mockDashboardService{
			getSummaryFn: func(_ string) (*services.DashboardSummary, error) {
				return &services.DashboardSummary{
					RecentEntries: []models.FinancialEntry{
						{Base: models.Base{ID: "01900000-0000-7000-8000-0000000000aa"}, Title: "Salary"},
					},
					TotalAmount: decimal.NewFromInt(125),
					RecentJournal: []services.JournalPreview{
						{ID: "01900000-0000-7000-8000-0000000000ba", Title: "Long one", Description: "This descriptio..."},
					},
					OpenTodos: []services.TodoWithCategory{
						{ID: "01900000-0000-7000-8000-0000000000da", CategoryName: "Chores"},
					},
					OpenTodosTotal: 3,
				}, nil
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].(map[string]interface{})
		if data["totalAmount"] != "125" {
			t.Errorf("expected totalAmount 125, got %v", data["totalAmount"])
		}
		entries := data["recent_entries"].([]interface{})
		if len(entries) != 1 {
			t.Errorf("expected 1 recent entry, got %d", len(entries))
		}
		journal := data["recent_journal"].([]interface{})
		preview := journal[0].(map[string]interface{})
		if preview["description"] != "This descriptio..." {
			t.Errorf("expected shortened description, got %v", preview["description"])
		}
		if data["open_todos_total"] != float64(3) {
			t.Errorf("expected open_todos_total 3, got %v", data["open_todos_total"])
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := gin.New()
		r.GET("/dashboard", handler.GetSummary)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("returns 500 on service failure", func(t *testing.T) {
		dashSvc := &mockDashboardService{
			getSummaryFn: func(_ string) (*services.DashboardSummary, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db connection lost"))
			},
		}
		handler := NewDashboardHandler(dashSvc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
