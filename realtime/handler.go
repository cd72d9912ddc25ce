package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// TokenVerifier checks the room session token issued by create/join/rejoin.
type TokenVerifier interface {
	Verify(token string) (roomCode, playerName string, err error)
}

type WatchHandler struct {
	hub    *Hub
	tokens TokenVerifier
}

func NewWatchHandler(hub *Hub, tokens TokenVerifier) *WatchHandler {
	return &WatchHandler{hub: hub, tokens: tokens}
}

// WatchRoomHandler upgrades the connection and subscribes it to change
// signals for the room named in the session token.
func (wh *WatchHandler) WatchRoomHandler(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		ctx.String(http.StatusUnauthorized, "missing-token")
		return
	}

	roomCode, _, err := wh.tokens.Verify(token)
	if err != nil {
		ctx.String(http.StatusUnauthorized, "invalid-token")
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade failed")
		return
	}

	client := newClient(wh.hub, roomCode, conn)
	wh.hub.Subscribe(client)
	go client.readPump()
	go client.writePump()
}
