package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
)

// StatsProvider defines the interface for the demo statistics source.
type StatsProvider interface {
	Stats(ctx context.Context) (*models.DemoStats, error)
}

// StatsErrorResponse represents an error response for the stats endpoint
// swagger:model StatsErrorResponse
type StatsErrorResponse struct {
	// default: Failed to get statistics
	Error string `json:"error"`
}

// NewStatsHandler returns an HTTP handler for demo signup statistics.
// @Summary Demo signup statistics
// @Description Total users, early supporters and a top-10 city breakdown.
// @Tags accounts
// @Produce json
// @Success 200 {object} models.DemoStats "Current statistics"
// @Failure 500 {object} handlers.StatsErrorResponse "Store failure"
// @Router /api/demo-stats [get]
func NewStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("stats lookup failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StatsErrorResponse{
				Error: "Failed to get statistics",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
