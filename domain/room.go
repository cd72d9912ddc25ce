package domain

import "time"

type RoomState string

const (
	StateSetup   RoomState = "setup"
	StateReveal  RoomState = "reveal"
	StatePlaying RoomState = "playing"
	StateEnded   RoomState = "ended"
)

// Settings is mutable only while the room is in setup.
type Settings struct {
	Category     string `json:"category"`
	NumImpostors int    `json:"numImpostors"`
	TimeLimit    int    `json:"timeLimit"`
}

// GameData is reset at the start of every round. StartTime is unix
// milliseconds; it is the authoritative clock for the round, TimeLeft is
// derived from it on every read and never trusted from clients.
type GameData struct {
	SecretWord         string   `json:"secretWord"`
	TimeLeft           int      `json:"timeLeft"`
	PlayingOrder       []Player `json:"playingOrder"`
	CurrentPlayerIndex int      `json:"currentPlayerIndex"`
	StartTime          *int64   `json:"startTime"`
	ReadyPlayers       []string `json:"readyPlayers"`
}

type Player struct {
	Id         string    `json:"id"`
	RoomId     string    `json:"-"`
	Name       string    `json:"name"`
	IsHost     bool      `json:"isHost"`
	IsImpostor bool      `json:"isImpostor"`
	JoinedAt   time.Time `json:"-"`
}

type Room struct {
	Id        string    `json:"id"`
	Code      string    `json:"code"`
	Host      string    `json:"host"`
	State     RoomState `json:"gameState"`
	Settings  Settings  `json:"settings"`
	GameData  GameData  `json:"gameData"`
	UpdatedAt time.Time `json:"lastUpdated"`
}

// RoomSnapshot is the full room merged with its players, the unit every
// client replaces its local view with.
type RoomSnapshot struct {
	Room
	Players []Player `json:"players"`
}

// NewGameData returns the empty round shape used at room creation and reset.
func NewGameData(timeLimit int) GameData {
	return GameData{
		TimeLeft:     timeLimit,
		PlayingOrder: []Player{},
		ReadyPlayers: []string{},
	}
}
