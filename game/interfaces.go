package game

import (
	"context"
	"time"

	"github.com/stevenD18skz/impostor-app/domain"
)

// RoomStore is the durable keyed storage for rooms and their players. Every
// engine action is a short sequence of calls against it; the conditional
// methods (TransitionState, AppendReadyPlayer, BeginPlaying) are the only
// ones with stronger-than-last-write-wins semantics.
type RoomStore interface {
	GetRoomByCode(ctx context.Context, code string) (domain.Room, error)
	GetPlayers(ctx context.Context, roomId string) ([]domain.Player, error)
	CreateRoom(ctx context.Context, room domain.Room, hostName string) (domain.Room, domain.Player, error)
	InsertPlayer(ctx context.Context, roomId, name string) (domain.Player, error)
	UpdateSettings(ctx context.Context, roomId string, settings domain.Settings) error
	UpdateGameData(ctx context.Context, roomId string, gameData domain.GameData) error
	SetState(ctx context.Context, roomId string, to domain.RoomState) error
	TransitionState(ctx context.Context, roomId string, from, to domain.RoomState) (bool, error)
	AppendReadyPlayer(ctx context.Context, roomId, name string) (domain.GameData, error)
	BeginPlaying(ctx context.Context, roomId string, startedAt time.Time) (bool, error)
	UpdatePlayerRole(ctx context.Context, playerId string, isImpostor bool) error
	PromoteHost(ctx context.Context, roomId, playerId, name string) error
	DeletePlayer(ctx context.Context, playerId string) error
	DeleteRoom(ctx context.Context, roomId string) error
}

// WordSource resolves category ids and picks secret words.
type WordSource interface {
	Has(categoryId string) bool
	DefaultCategory() string
	Pick(categoryId string) (string, error)
}

// Notifier signals watching clients that a room changed and they should
// refetch the snapshot. Implementations must not block.
type Notifier interface {
	RoomChanged(code string)
}
