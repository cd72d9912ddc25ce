package domain

import "errors"

var (
	ErrRoomNotFound       = errors.New("room-not-found")
	ErrPlayerNotFound     = errors.New("player-not-found")
	ErrNameTaken          = errors.New("name-already-taken")
	ErrGameAlreadyStarted = errors.New("game-already-started")
	ErrNotEnoughPlayers   = errors.New("not-enough-players")
	ErrTooManyImpostors   = errors.New("too-many-impostors")
	ErrUnknownCategory    = errors.New("unknown-category")
	ErrInvalidAction      = errors.New("invalid-action")
)

// ErrCodeTaken is returned by the store when a freshly generated room code
// collides with an active room; callers regenerate and retry.
var ErrCodeTaken = errors.New("room-code-taken")

var UnexpectedDatabaseError = errors.New("unexpected database error")
