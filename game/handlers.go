package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/stevenD18skz/impostor-app/domain"
)

var (
	ErrInvalidRequestFormatStr = "invalid-request-format"
	ErrMissingRoomCodeStr      = "missing-room-code"
	ErrMissingPlayerNameStr    = "missing-player-name"
	ErrUnknownStr              = "unknown-error"
)

// GameService is what the handler needs from the engine.
type GameService interface {
	Create(ctx context.Context, playerName string) (CreateResult, error)
	Join(ctx context.Context, code, playerName string) (JoinResult, error)
	Rejoin(ctx context.Context, code, playerName string) (CreateResult, error)
	Leave(ctx context.Context, code, playerName string) (LeaveResult, error)
	UpdateSettings(ctx context.Context, code string, patch SettingsPatch) (domain.RoomSnapshot, error)
	StartGame(ctx context.Context, code string) (domain.RoomSnapshot, error)
	ConfirmRole(ctx context.Context, code, playerName string) (domain.RoomSnapshot, error)
	UpdateGame(ctx context.Context, code string, patch GameDataPatch) (domain.RoomSnapshot, error)
	EndGame(ctx context.Context, code string) (domain.RoomSnapshot, error)
	ResetGame(ctx context.Context, code string) (domain.RoomSnapshot, error)
	Snapshot(ctx context.Context, code string) (domain.RoomSnapshot, error)
}

// SessionIssuer signs room session tokens handed out by create/join/rejoin.
type SessionIssuer interface {
	Generate(roomCode, playerName string) string
}

// actionRequest is the single-endpoint action envelope, dispatched on the
// Action discriminator.
type actionRequest struct {
	Action     string         `json:"action"`
	RoomCode   string         `json:"roomCode"`
	PlayerName string         `json:"playerName"`
	Settings   *SettingsPatch `json:"settings"`
	GameData   *GameDataPatch `json:"gameData"`
}

type GameHandler struct {
	service GameService
	tokens  SessionIssuer
}

func NewGameHandler(service GameService, tokens SessionIssuer) *GameHandler {
	return &GameHandler{service: service, tokens: tokens}
}

// GetRoomHandler serves the fetch-by-code query both polling clients and
// change-notify refetches use.
func (h *GameHandler) GetRoomHandler(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		ctx.String(http.StatusBadRequest, ErrMissingRoomCodeStr)
		return
	}

	snapshot, err := h.service.Snapshot(ctx.Request.Context(), code)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// ActionHandler dispatches the action envelope. Unknown fields anywhere in
// the payload are rejected, not silently merged.
func (h *GameHandler) ActionHandler(ctx *gin.Context) {
	var req actionRequest

	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		ctx.String(http.StatusBadRequest, ErrInvalidRequestFormatStr)
		return
	}

	switch req.Action {
	case "create":
		h.create(ctx, req)
	case "join":
		h.join(ctx, req)
	case "rejoin":
		h.rejoin(ctx, req)
	case "leave":
		h.leave(ctx, req)
	case "updateSettings":
		h.updateSettings(ctx, req)
	case "startGame":
		h.roomOnly(ctx, req, h.service.StartGame)
	case "confirmRole":
		h.confirmRole(ctx, req)
	case "updateGame":
		h.updateGame(ctx, req)
	case "endGame":
		h.roomOnly(ctx, req, h.service.EndGame)
	case "resetGame":
		h.roomOnly(ctx, req, h.service.ResetGame)
	default:
		ctx.String(http.StatusBadRequest, domain.ErrInvalidAction.Error())
	}
}

func (h *GameHandler) create(ctx *gin.Context, req actionRequest) {
	if req.PlayerName == "" {
		ctx.String(http.StatusBadRequest, ErrMissingPlayerNameStr)
		return
	}

	result, err := h.service.Create(ctx.Request.Context(), req.PlayerName)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"roomCode": result.RoomCode,
		"room":     result.Room,
		"myPlayer": result.MyPlayer,
		"token":    h.tokens.Generate(result.RoomCode, req.PlayerName),
	})
}

func (h *GameHandler) join(ctx *gin.Context, req actionRequest) {
	if !requireIdentity(ctx, req) {
		return
	}

	result, err := h.service.Join(ctx.Request.Context(), req.RoomCode, req.PlayerName)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"room":     result.Room,
		"myPlayer": result.MyPlayer,
		"token":    h.tokens.Generate(req.RoomCode, req.PlayerName),
	})
}

func (h *GameHandler) rejoin(ctx *gin.Context, req actionRequest) {
	if !requireIdentity(ctx, req) {
		return
	}

	result, err := h.service.Rejoin(ctx.Request.Context(), req.RoomCode, req.PlayerName)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"roomCode": result.RoomCode,
		"room":     result.Room,
		"myPlayer": result.MyPlayer,
		"token":    h.tokens.Generate(req.RoomCode, req.PlayerName),
	})
}

func (h *GameHandler) leave(ctx *gin.Context, req actionRequest) {
	if !requireIdentity(ctx, req) {
		return
	}

	result, err := h.service.Leave(ctx.Request.Context(), req.RoomCode, req.PlayerName)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *GameHandler) updateSettings(ctx *gin.Context, req actionRequest) {
	if req.RoomCode == "" {
		ctx.String(http.StatusBadRequest, ErrMissingRoomCodeStr)
		return
	}

	patch := SettingsPatch{}
	if req.Settings != nil {
		patch = *req.Settings
	}

	snapshot, err := h.service.UpdateSettings(ctx.Request.Context(), req.RoomCode, patch)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room": snapshot})
}

func (h *GameHandler) confirmRole(ctx *gin.Context, req actionRequest) {
	if !requireIdentity(ctx, req) {
		return
	}

	snapshot, err := h.service.ConfirmRole(ctx.Request.Context(), req.RoomCode, req.PlayerName)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room": snapshot})
}

func (h *GameHandler) updateGame(ctx *gin.Context, req actionRequest) {
	if req.RoomCode == "" {
		ctx.String(http.StatusBadRequest, ErrMissingRoomCodeStr)
		return
	}

	patch := GameDataPatch{}
	if req.GameData != nil {
		patch = *req.GameData
	}

	snapshot, err := h.service.UpdateGame(ctx.Request.Context(), req.RoomCode, patch)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room": snapshot})
}

func (h *GameHandler) roomOnly(ctx *gin.Context, req actionRequest, action func(context.Context, string) (domain.RoomSnapshot, error)) {
	if req.RoomCode == "" {
		ctx.String(http.StatusBadRequest, ErrMissingRoomCodeStr)
		return
	}

	snapshot, err := action(ctx.Request.Context(), req.RoomCode)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"room": snapshot})
}

func requireIdentity(ctx *gin.Context, req actionRequest) bool {
	if req.RoomCode == "" {
		ctx.String(http.StatusBadRequest, ErrMissingRoomCodeStr)
		return false
	}
	if req.PlayerName == "" {
		ctx.String(http.StatusBadRequest, ErrMissingPlayerNameStr)
		return false
	}
	return true
}

func (h *GameHandler) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrPlayerNotFound):
		ctx.String(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNameTaken),
		errors.Is(err, domain.ErrGameAlreadyStarted),
		errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrTooManyImpostors),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrInvalidAction):
		ctx.String(http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("game action failed")
		ctx.String(http.StatusInternalServerError, ErrUnknownStr)
	}
}
