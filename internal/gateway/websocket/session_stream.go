// Package websocket pushes session events to browser tabs.
package websocket

import (
	"net/http"
	"time"

	"vidcall_server/internal/model"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origins are restricted by the CORS layer
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client one subscribed connection
type Client struct {
	Conn   *websocket.Conn
	UserID string
	events <-chan model.SessionEvent
	cancel func()
}

// ServeSessionEvents upgrades the request and streams events until either
// side goes away. cancel releases the subscription and is always called.
func ServeSessionEvents(w http.ResponseWriter, r *http.Request, userID string, events <-chan model.SessionEvent, cancel func()) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		return err
	}
	client := &Client{Conn: conn, UserID: userID, events: events, cancel: cancel}
	go client.Read()
	go client.Write()
	zap.L().Info("session stream opened", zap.String("user_id", userID))
	return nil
}

// Read only services control frames; a read error ends the subscription.
func (c *Client) Read() {
	defer func() {
		c.cancel()
		_ = c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("session stream read error", zap.String("user_id", c.UserID), zap.Error(err))
			}
			return
		}
	}
}

// Write forwards events as JSON and keeps the connection alive with pings.
// A closed event channel sends a normal close frame.
func (c *Client) Write() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
		zap.L().Info("session stream closed", zap.String("user_id", c.UserID))
	}()
	for {
		select {
		case event, ok := <-c.events:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
				return
			}
			if err := c.Conn.WriteJSON(event); err != nil {
				zap.L().Error("session stream write failed", zap.String("user_id", c.UserID), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
