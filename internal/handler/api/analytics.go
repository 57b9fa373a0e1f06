package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/handler"
	"github.com/hazelbrook/saffron/internal/service"
)

// AnalyticsHandler handles dashboard, sales rollup and inventory alert routes.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	logger    *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger,
	}
}

// Dashboard handles GET /api/v1/analytics/dashboard?from=...&to=...
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.analytics.Dashboard(r.Context(), from, to)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, map[string]any{
		"from":               summary.From.Format("2006-01-02"),
		"to":                 summary.To.Format("2006-01-02"),
		"statistics":         toStatisticsResponse(summary.Stats),
		"low_stock_count":    summary.LowStockCount,
		"out_of_stock_count": summary.OutOfStockCount,
	})
}

type rollupRequest struct {
	Date string `json:"date"`
}

// Rollup handles POST /api/v1/analytics/rollups
// Recomputes the sales rollup for one day; defaults to yesterday.
func (h *AnalyticsHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	var req rollupRequest
	if r.ContentLength != 0 {
		if err := handler.DecodeJSON(r, &req); err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
	}

	day := time.Now().UTC().AddDate(0, 0, -1)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "", "date must be YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	sales, err := h.analytics.RollupDay(r.Context(), day)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.WriteJSON(w, http.StatusOK, toDailySalesResponse(*sales))
}

// Sales handles GET /api/v1/analytics/sales?from=...&to=...
func (h *AnalyticsHandler) Sales(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	sales, err := h.analytics.SalesBetween(r.Context(), from, to)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]dailySalesResponse, len(sales))
	for i, d := range sales {
		resp[i] = toDailySalesResponse(d)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"sales": resp})
}

// SweepInventory handles POST /api/v1/analytics/inventory-sweep
func (h *AnalyticsHandler) SweepInventory(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.analytics.SweepInventory(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = toAlertResponse(a)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"alerts": resp})
}

// ListAlerts handles GET /api/v1/analytics/alerts
func (h *AnalyticsHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.analytics.ListOpenAlerts(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := make([]alertResponse, len(alerts))
	for i, a := range alerts {
		resp[i] = toAlertResponse(a)
	}
	handler.WriteJSON(w, http.StatusOK, map[string]any{"alerts": resp})
}

// parseDateRange reads from/to query parameters as YYYY-MM-DD dates.
// Defaults to the trailing 30 days, with to exclusive of the day after.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.Errorf(domain.EINVALID, "", "from must be YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, domain.Errorf(domain.EINVALID, "", "to must be YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.Errorf(domain.EINVALID, "", "to must not be before from")
	}
	return from, to, nil
}
