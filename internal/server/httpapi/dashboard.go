package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/services"
)

// DashboardOperator is the slice of the dashboard service the handlers need.
type DashboardOperator interface {
	Stats(ctx context.Context, userID string) (*services.Stats, error)
	History(ctx context.Context, userID string, limit int) ([]services.HistoryItem, error)
	TrendsSince(ctx context.Context, userID string, days int) (*services.Trends, error)
}

// DashboardHandler serves the analytics endpoints.
type DashboardHandler struct {
	dashboard DashboardOperator
	logger    logging.Logger
}

func NewDashboardHandler(dashboard DashboardOperator, logger logging.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	stats, err := h.dashboard.Stats(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "dashboard stats failed", "error", err)
		writeInternal(w, "Failed to get statistics", err)
		return
	}

	writeData(w, stats)
}

func (h *DashboardHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.dashboard.History(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error(r.Context(), "dashboard history failed", "error", err)
		writeInternal(w, "Failed to get history", err)
		return
	}

	writeData(w, map[string]any{
		"history": history,
		"total":   len(history),
	})
}

func (h *DashboardHandler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	trends, err := h.dashboard.TrendsSince(r.Context(), userID, days)
	if err != nil {
		h.logger.Error(r.Context(), "dashboard trends failed", "error", err)
		writeInternal(w, "Failed to get trends", err)
		return
	}

	writeData(w, map[string]any{
		"date_range": trends.DateRange,
		"trends": map[string]any{
			"interviews": trends.Interviews,
			"fluency":    trends.Fluency,
		},
	})
}
