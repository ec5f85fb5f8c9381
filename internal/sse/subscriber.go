package sse

import (
	"context"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// Subscriber bridges the notification bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe forwards every notification type to the hub
func (s *Subscriber) Subscribe(bus event.Bus) {
	for _, et := range domain.AllEventTypes {
		bus.Subscribe(event.Type(et), s.forward)
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscriberReady, "types", len(domain.AllEventTypes))
}

// forward never fails the publisher; a full hub only costs stream clients
// this notification.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	if !s.hub.Broadcast(string(evt.Type), evt.Payload) {
		logger.FromContext(ctx).Debug(LogMsgBroadcastDropped, "type", evt.Type)
	}
	return nil
}
