package realtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = time.Minute
	pingPeriod = 30 * time.Second
)

// Client is one websocket subscriber watching a room.
type Client struct {
	id       string
	roomCode string
	conn     *websocket.Conn
	send     chan []byte
	limiter  *rate.Limiter
	hub      *Hub
}

func newClient(hub *Hub, roomCode string, conn *websocket.Conn) *Client {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	return &Client{
		id:       uuid.NewString(),
		roomCode: roomCode,
		conn:     conn,
		send:     make(chan []byte, 16),
		limiter:  rate.NewLimiter(1, 5),
		hub:      hub,
	}
}

// readPump discards inbound frames; the watch socket is one-directional.
// It exists to service control frames and to notice the peer going away.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
		if !c.limiter.Allow() {
			return
		}
	}
}

func (c *Client) writePump() {
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-pingTicker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
