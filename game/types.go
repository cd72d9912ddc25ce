package game

import "github.com/stevenD18skz/impostor-app/domain"

// SettingsPatch is a partial settings update. Nil fields keep their current
// value; present fields are validated before the merge is written.
type SettingsPatch struct {
	Category     *string `json:"category"`
	NumImpostors *int    `json:"numImpostors"`
	TimeLimit    *int    `json:"timeLimit"`
}

// GameDataPatch is the subset of game data a driving client may sync back.
// The round clock is authoritative server-side, so there is no timeLeft
// field here: clients that still send one are rejected by the strict
// decoder at the handler.
type GameDataPatch struct {
	CurrentPlayerIndex *int `json:"currentPlayerIndex"`
}

type CreateResult struct {
	RoomCode string              `json:"roomCode"`
	Room     domain.RoomSnapshot `json:"room"`
	MyPlayer domain.Player       `json:"myPlayer"`
}

type JoinResult struct {
	Room     domain.RoomSnapshot `json:"room"`
	MyPlayer domain.Player       `json:"myPlayer"`
}

type LeaveResult struct {
	Success     bool `json:"success"`
	RoomDeleted bool `json:"roomDeleted"`
}
