package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Stream-only event types. Everything else carries a notification type.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// ParamTypes filters the stream: ?types=customer.served,gold.changed
const ParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgSubscriberReady    = "SSE subscriber registered"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, dropping notification"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgStreamUnsupported  = "SSE not supported"
)
