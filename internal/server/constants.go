package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API key not set, API is open"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
	"/swagger/",
}

// RedactedValue replaces secrets in logged headers
const RedactedValue = "[REDACTED]"

// Limits
const (
	MaxRequestBytes      = 2 << 20
	ReadHeaderTimeout    = 5 * time.Second
	RateWindow           = 5 * time.Minute
	MaxRequestsPerWindow = 1000
	FailedAuthAlertAfter = 5
	HighRateLogEvery     = 100
)
