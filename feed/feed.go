package feed

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Feed is the HTTP side of a registry: an http.Handler that upgrades
// requests to WebSocket connections and streams the registry's
// sources.
type Feed struct {
	registry *Registry
	config   *Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// New returns a Feed serving registry. A nil config means
// DefaultConfig; unset fields are filled from the defaults.
func New(registry *Registry, config *Config) *Feed {
	if config == nil {
		config = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if config.ReadTimeout == 0 {
			config.ReadTimeout = defaults.ReadTimeout
		}
		if config.WriteTimeout == 0 {
			config.WriteTimeout = defaults.WriteTimeout
		}
		if config.PingInterval == 0 {
			config.PingInterval = defaults.PingInterval
		}
		if config.SendQueue == 0 {
			config.SendQueue = defaults.SendQueue
		}
		if config.MaxMessageSize == 0 {
			config.MaxMessageSize = defaults.MaxMessageSize
		}
		if config.ReadBufferSize == 0 {
			config.ReadBufferSize = defaults.ReadBufferSize
		}
		if config.WriteBufferSize == 0 {
			config.WriteBufferSize = defaults.WriteBufferSize
		}
		if config.CheckOrigin == nil {
			config.CheckOrigin = defaults.CheckOrigin
		}
	}

	return &Feed{
		registry: registry,
		config:   config,
		logger:   registry.logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
	}
}

// ServeHTTP upgrades the request and serves the feed until the client
// disconnects or falls behind.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{
		id:     uuid.Must(uuid.NewV7()).String(),
		conn:   conn,
		send:   make(chan []byte, f.config.SendQueue),
		config: f.config,
		logger: f.logger,
	}

	f.logger.Info("client connected", "client", c.id, "remote", r.RemoteAddr)

	go c.writePump()
	f.registry.attach(c)

	c.readPump()
	f.registry.detach(c)

	f.logger.Info("client disconnected", "client", c.id)
}
