package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleGetMetrics returns the singleton metrics record backing the
// dashboard's headline cards.
func (h *Handler) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.GetMetrics(r.Context())
	if err != nil {
		h.logger.Error("get metrics error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to fetch metrics")
		return
	}
	h.writeJSON(w, http.StatusOK, metrics)
}

// handleStatsOverview returns aggregate figures computed across all
// collections.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.StatsOverview(r.Context())
	if err != nil {
		h.logger.Error("stats overview error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
