package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"phlegm-site/internal/services"
)

func analyticsBackedHandler(t *testing.T, apiKey string, backend http.HandlerFunc) *StatsHandler {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	return NewStatsHandler(services.NewAnalyticsClient(server.URL, apiKey, "phlegm.music"))
}

func TestGetStatsDefaultsPeriod(t *testing.T) {
	var gotPeriod string
	h := analyticsBackedHandler(t, "token", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/aggregate" {
			gotPeriod = r.URL.Query().Get("period")
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"results": {"visitors": {"value": 3}}}`)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	w := httptest.NewRecorder()
	h.GetStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if gotPeriod != "30d" {
		t.Fatalf("expected default period 30d, got %q", gotPeriod)
	}

	var report services.StatsReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if report.Period != "30d" {
		t.Fatalf("unexpected report period %q", report.Period)
	}
}

func TestGetStatsRejectsUnknownPeriod(t *testing.T) {
	h := analyticsBackedHandler(t, "token", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("upstream must not be called for an invalid period")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?period=90d", nil)
	w := httptest.NewRecorder()
	h.GetStats(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetStatsWithoutAPIKey(t *testing.T) {
	h := analyticsBackedHandler(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("upstream must not be called without an api key")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?period=7d", nil)
	w := httptest.NewRecorder()
	h.GetStats(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "analytics_not_configured") {
		t.Fatalf("expected analytics_not_configured, got %s", w.Body.String())
	}
}

func TestGetStatsPropagatesUpstreamStatus(t *testing.T) {
	h := analyticsBackedHandler(t, "bad-token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?period=7d", nil)
	w := httptest.NewRecorder()
	h.GetStats(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected upstream 401 to propagate, got %d", w.Code)
	}
}
