package handler

import (
	"context"
	"net/http"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/sim"
)

// HandleListEvents returns the queued, active and finished world events
// @Summary List world events
// @Tags events
// @Produce json
// @Success 200 {object} domain.EventBook
// @Router /api/v1/events [get]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var book domain.EventBook
		ok := h.do(w, r, "List events", func(_ context.Context, tx sim.Tx) error {
			book = tx.Events.Events()
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, book)
		}
	}
}

// HandleActivateEvent starts a queued event ahead of schedule
// @Summary Activate a queued event
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id}/activate [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleActivateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		ok = h.do(w, r, "Activate event", func(ctx context.Context, tx sim.Tx) error {
			return tx.Events.ActivateEvent(ctx, id)
		})
		if ok {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventActivated})
		}
	}
}

// EventResultRequest resolves an event, optionally through a story choice
type EventResultRequest struct {
	Success bool                `json:"success"`
	Choice  *domain.EventChoice `json:"choice"`
}

// HandleRecordEventResult resolves an active or queued event, attaches the
// choice to one already in history, or records a result for an unknown id
// @Summary Record an event result
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param request body EventResultRequest true "Outcome and story choice"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/events/{id}/result [post]
// @Security ApiKeyAuth
func (h *GameHandlers) HandleRecordEventResult() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, ParamID)
		if !ok {
			return
		}
		var req EventResultRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record event result"); err != nil {
			return
		}
		ok = h.do(w, r, "Record event result", func(ctx context.Context, tx sim.Tx) error {
			return tx.Events.RecordEventResult(ctx, id, req.Success, req.Choice)
		})
		if ok {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEventRecorded})
		}
	}
}
