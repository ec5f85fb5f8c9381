package sse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
)

func TestSubscriber_ForwardsBusNotifications(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)

	client := hub.Register(nil)
	registered(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(), event.NewGoldChangedEvent(25, 525)))

	evt := receive(t, client)
	assert.Equal(t, domain.EventTypeGoldChanged, evt.Type)
	assert.Equal(t, event.GoldChangedPayloadV1{Amount: 25, Total: 525}, evt.Payload)
}

func TestSubscriber_NeverFailsPublisherAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	bus := event.NewMemoryBus()
	NewSubscriber(hub).Subscribe(bus)

	hub.Stop()
	assert.NoError(t, bus.Publish(context.Background(), event.NewLevelUpEvent(2)))
}
