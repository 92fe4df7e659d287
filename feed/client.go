package feed

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// client is one WebSocket consumer. The registry fills send; writePump
// drains it. Nothing else touches the connection for writing.
type client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	config *Config
	logger *slog.Logger
}

// writePump forwards queued frames and sends keepalive pings. It runs
// until the registry closes send or a write fails, and owns closing
// the connection.
func (c *client) writePump() {
	ticker := time.NewTicker(c.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return
			}
		}
	}
}

// readPump consumes inbound traffic purely for liveness: any message
// or pong refreshes the read deadline. It blocks until the connection
// drops.
func (c *client) readPump() {
	c.conn.SetReadLimit(c.config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.logger.Error("read error", "client", c.id, "error", err)
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	}
}
