package handler

import (
	"net/http"

	"github.com/osse101/TavernSim_Go/internal/eventlog"
)

// HandleListNotifications returns recent journal entries, oldest first.
// Query: type filters by notification type, after returns entries with a
// larger sequence number, limit keeps the newest N.
// @Summary List recent notifications
// @Tags notifications
// @Produce json
// @Param type query string false "Notification type"
// @Param after query int false "Only entries with a larger sequence number"
// @Param limit query int false "Keep the newest N entries"
// @Success 200 {array} eventlog.Entry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/notifications [get]
// @Security ApiKeyAuth
func HandleListNotifications(journal eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		after, ok := GetOptionalIntQueryParam(r, w, ParamAfter, 0, ErrMsgInvalidAfter)
		if !ok {
			return
		}
		limit, ok := GetOptionalIntQueryParam(r, w, ParamLimit, DefaultNotificationLimit, ErrMsgInvalidLimit)
		if !ok {
			return
		}

		entries, err := journal.Recent(r.Context(), eventlog.EventFilter{
			Type:  GetOptionalQueryParam(r, ParamType, ""),
			After: uint64(after),
			Limit: limit,
		})
		if err != nil {
			respondServiceError(w, r, "List notifications", err)
			return
		}
		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
