package feed

import (
	"net/http"
	"net/url"
	"time"
)

// Config holds feed handler settings.
type Config struct {
	// ReadTimeout is how long a client may stay silent before it is
	// dropped. Clients are expected to answer pings.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a frame.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// PingInterval is the time between keepalive pings. Keep it
	// comfortably below ReadTimeout.
	// Default: 30 seconds.
	PingInterval time.Duration

	// SendQueue is the per-client outbound buffer, in frames. A client
	// whose queue overflows is dropped.
	// Default: 64.
	SendQueue int

	// MaxMessageSize caps inbound messages. Clients send nothing but
	// keepalives.
	// Default: 4KB.
	MaxMessageSize int64

	// ReadBufferSize is the WebSocket read buffer size.
	// Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	// Default: 4096.
	WriteBufferSize int

	// CheckOrigin validates the Origin header during the upgrade.
	// Default: SameOriginCheck.
	CheckOrigin func(*http.Request) bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		PingInterval:    30 * time.Second,
		SendQueue:       64,
		MaxMessageSize:  4 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     SameOriginCheck,
	}
}

// SameOriginCheck accepts upgrades whose Origin host matches the
// request host. Requests without an Origin header (non-browser
// clients) are allowed.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return r.Host != "" && originURL.Host == r.Host
}
