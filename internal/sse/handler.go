package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// ConnectedPayload is the first event on every stream
type ConnectedPayload struct {
	ClientID string   `json:"clientId"`
	Filters  []string `json:"filters"`
}

// Handler streams hub events until the client goes away or the hub stops
// @Summary Stream notifications
// @Description Server-sent events; the first event is "connected" and keepalives follow every 30 seconds
// @Tags notifications
// @Produce text/event-stream
// @Param types query string false "Comma separated notification types"
// @Success 200 {string} string "event stream"
// @Router /api/v1/notifications/stream [get]
// @Security ApiKeyAuth
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		rc := http.NewResponseController(w)

		var eventTypes []string
		if filterParam := r.URL.Query().Get(ParamTypes); filterParam != "" {
			for _, t := range strings.Split(filterParam, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "type", event.Type, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				log.Warn(LogMsgStreamUnsupported, "error", err)
				return false
			}
			return true
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   ConnectedPayload{ClientID: client.ID, Filters: eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
