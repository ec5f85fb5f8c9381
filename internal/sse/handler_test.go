package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streamReader struct {
	t       *testing.T
	scanner *bufio.Scanner
}

// next reads one "event:/data:" frame and decodes its data line.
func (s *streamReader) next() Event {
	s.t.Helper()
	var evt Event
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == "" {
			return evt
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(s.t, json.Unmarshal([]byte(data), &evt))
		}
	}
	s.t.Fatalf("stream ended: %v", s.scanner.Err())
	return evt
}

func openStream(t *testing.T, hub *Hub, query string) (*streamReader, *http.Response) {
	t.Helper()

	srv := httptest.NewServer(Handler(hub))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+query, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return &streamReader{t: t, scanner: bufio.NewScanner(resp.Body)}, resp
}

func TestHandler_StreamsFilteredEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()

	stream, resp := openStream(t, hub, "?types=gold.changed,%20day.new,")
	t.Cleanup(hub.Stop)

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	connected := stream.next()
	require.Equal(t, EventTypeConnected, connected.Type)
	payload, ok := connected.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"gold.changed", "day.new"}, payload["filters"])

	registered(t, hub, 1)
	require.True(t, hub.Broadcast("customer.left", nil))
	require.True(t, hub.Broadcast("day.new", map[string]int{"day": 4}))

	evt := stream.next()
	assert.Equal(t, "day.new", evt.Type)
	assert.Equal(t, map[string]interface{}{"day": float64(4)}, evt.Payload)
}

func TestHandler_EndsWhenHubStops(t *testing.T) {
	hub := NewHub()
	hub.Start()

	stream, _ := openStream(t, hub, "")
	require.Equal(t, EventTypeConnected, stream.next().Type)
	registered(t, hub, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for stream.scanner.Scan() {
		}
	}()

	hub.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after hub stop")
	}
}
