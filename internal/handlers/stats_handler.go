package handlers

import (
	"errors"
	"log"
	"net/http"

	"phlegm-site/internal/services"
)

var validPeriods = map[string]bool{
	"7d": true, "30d": true, "6mo": true, "12mo": true,
}

// StatsHandler proxies the analytics dashboard queries server-side so the
// API key stays out of the browser.
type StatsHandler struct {
	analytics *services.AnalyticsClient
}

func NewStatsHandler(analytics *services.AnalyticsClient) *StatsHandler {
	return &StatsHandler{analytics: analytics}
}

// GetStats returns visitor metrics and breakdowns for a period.
// @Tags Stats
// @Summary Visitor stats
// @Security BearerAuth
// @Produce json
// @Param period query string false "Period (7d, 30d, 6mo, 12mo)" default(30d)
// @Success 200 {object} services.StatsReport
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "30d"
	}
	if !validPeriods[period] {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "period must be one of 7d, 30d, 6mo, 12mo")
		return
	}

	report, err := h.analytics.Stats(r.Context(), period)
	if err != nil {
		if errors.Is(err, services.ErrAnalyticsNotConfigured) {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "analytics_not_configured", "Analytics API key is not configured")
			return
		}
		var apiErr *services.AnalyticsAPIError
		if errors.As(err, &apiErr) {
			writeJSONErrorResponse(w, apiErr.Status, "analytics_error", apiErr.Error())
			return
		}
		log.Printf("Failed to fetch analytics stats: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "analytics_error", "Failed to fetch analytics data")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
