// Package realtime delivers change notifications to clients watching a
// room. The hub never pushes game state: a signal only tells the client
// that something in the room changed, and the client refetches the full
// snapshot through the query endpoint. Polling clients can ignore this
// package entirely.
package realtime

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

type changeEvent struct {
	Room string `json:"room"`
	Seq  uint64 `json:"seq"`
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	changes    chan string

	rooms map[string]map[*Client]struct{}
	seq   map[string]uint64
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client, 32),
		unregister: make(chan *Client, 32),
		changes:    make(chan string, 256),
		rooms:      make(map[string]map[*Client]struct{}),
		seq:        make(map[string]uint64),
	}
}

// RoomChanged implements game.Notifier. Dropping a signal under pressure is
// fine: the next one triggers the same full refetch.
func (h *Hub) RoomChanged(code string) {
	select {
	case h.changes <- code:
	default:
	}
}

func (h *Hub) Subscribe(c *Client) {
	h.register <- c
}

func (h *Hub) Unsubscribe(c *Client) {
	h.unregister <- c
}

// Run is the hub actor; all room/subscriber bookkeeping happens on this
// goroutine.
func (h *Hub) Run(started chan struct{}) {
	close(started)

	for {
		select {
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case code := <-h.changes:
			h.handleChange(code)
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	clients, ok := h.rooms[c.roomCode]
	if !ok {
		clients = make(map[*Client]struct{})
		h.rooms[c.roomCode] = clients
	}
	clients[c] = struct{}{}
	log.Debug().Str("room", c.roomCode).Str("client", c.id).Msg("watch subscribed")
}

func (h *Hub) handleUnregister(c *Client) {
	clients, ok := h.rooms[c.roomCode]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.rooms, c.roomCode)
		delete(h.seq, c.roomCode)
	}
}

func (h *Hub) handleChange(code string) {
	clients := h.rooms[code]
	if len(clients) == 0 {
		return
	}

	h.seq[code]++
	payload, err := json.Marshal(changeEvent{Room: code, Seq: h.seq[code]})
	if err != nil {
		return
	}

	for c := range clients {
		select {
		case c.send <- payload:
		default:
			// Slow consumer; it will resync on its next refetch.
		}
	}
}
