package handlers

import (
	"net/http"
	"strconv"

	"github.com/Varun5711/promokit/internal/clickhouse"
	"github.com/Varun5711/promokit/internal/logger"
)

type StatsHandler struct {
	analytics *clickhouse.Client
	log       *logger.Logger
}

// NewStatsHandler serves signup/login counts and device breakdowns from the
// analytics store. analytics may be nil when the pipeline is not configured.
func NewStatsHandler(analytics *clickhouse.Client) *StatsHandler {
	return &StatsHandler{
		analytics: analytics,
		log:       logger.New("stats-handler"),
	}
}

type signupStatsResponse struct {
	Days []clickhouse.DailyAuthStats `json:"days"`
}

type deviceStatsResponse struct {
	Devices []clickhouse.DeviceStats `json:"devices"`
}

func (h *StatsHandler) SignupStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.analytics == nil {
		respondError(w, http.StatusServiceUnavailable, "analytics unavailable")
		return
	}

	stats, err := h.analytics.GetDailyAuthStats(r.Context(), parseDays(r, 30))
	if err != nil {
		h.log.Error("Failed to query signup stats: %v", err)
		respondError(w, http.StatusInternalServerError, "stats query failed")
		return
	}

	respondJSON(w, http.StatusOK, signupStatsResponse{Days: stats})
}

func (h *StatsHandler) DeviceStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.analytics == nil {
		respondError(w, http.StatusServiceUnavailable, "analytics unavailable")
		return
	}

	stats, err := h.analytics.GetDeviceStats(r.Context(), parseDays(r, 30))
	if err != nil {
		h.log.Error("Failed to query device stats: %v", err)
		respondError(w, http.StatusInternalServerError, "stats query failed")
		return
	}

	respondJSON(w, http.StatusOK, deviceStatsResponse{Devices: stats})
}

// parseDays reads the optional ?days= window. Out-of-range or garbage values
// fall back rather than erroring; a year is the widest window served.
func parseDays(r *http.Request, fallback int) int {
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 365 {
			return parsed
		}
	}
	return fallback
}
