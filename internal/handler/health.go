package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is anything whose backing storage can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// readyTimeout bounds the store ping in /readyz
const readyTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready only while the save store answers
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: HealthMsgStoreFailed,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
