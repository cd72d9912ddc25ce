// Package local is the single-device variant of the game: one shared
// screen, players identified only by typed-in names, all state in memory.
// It follows the same round rules as the multiplayer engine but gates the
// role reveal on a manual pass-the-phone sequence instead of per-player
// confirmations.
package local

import (
	"errors"
	"fmt"
	"math/rand"
)

type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhaseNames   Phase = "names"
	PhaseReveal  Phase = "reveal"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

var (
	ErrWrongPhase      = errors.New("wrong-phase")
	ErrBadConfig       = errors.New("bad-config")
	ErrUnknownCategory = errors.New("unknown-category")
)

// WordSource is satisfied by words.Bank.
type WordSource interface {
	Has(categoryId string) bool
	DefaultCategory() string
	Pick(categoryId string) (string, error)
}

type Config struct {
	NumPlayers   int
	NumImpostors int
	Category     string
	TimeLimit    int
}

type Player struct {
	Name       string
	IsImpostor bool
}

type Game struct {
	words WordSource

	phase  Phase
	config Config

	playerNames   []string
	players       []Player
	secretWord    string
	playingOrder  []Player
	currentPlayer int
	showRole      bool

	timeLeft     int
	timerRunning bool
}

func NewGame(words WordSource) *Game {
	return &Game{
		words: words,
		phase: PhaseSetup,
		config: Config{
			NumPlayers:   4,
			NumImpostors: 1,
			Category:     words.DefaultCategory(),
			TimeLimit:    180,
		},
		timeLeft: 180,
	}
}

// Configure replaces the setup values. Only valid before names are entered.
func (g *Game) Configure(cfg Config) error {
	if g.phase != PhaseSetup {
		return ErrWrongPhase
	}
	if cfg.NumPlayers < 3 || cfg.NumPlayers > 12 {
		return ErrBadConfig
	}
	if cfg.NumImpostors < 1 || cfg.NumImpostors >= cfg.NumPlayers {
		return ErrBadConfig
	}
	if cfg.TimeLimit <= 0 {
		return ErrBadConfig
	}
	if !g.words.Has(cfg.Category) {
		return ErrUnknownCategory
	}
	g.config = cfg
	g.timeLeft = cfg.TimeLimit
	return nil
}

// EnterNames moves setup -> names, sizing the name list to the player count.
func (g *Game) EnterNames() error {
	if g.phase != PhaseSetup {
		return ErrWrongPhase
	}
	if len(g.playerNames) != g.config.NumPlayers {
		g.playerNames = make([]string, g.config.NumPlayers)
	}
	g.phase = PhaseNames
	return nil
}

func (g *Game) SetPlayerName(index int, name string) error {
	if g.phase != PhaseNames {
		return ErrWrongPhase
	}
	if index < 0 || index >= len(g.playerNames) {
		return ErrBadConfig
	}
	g.playerNames[index] = name
	return nil
}

// Start picks the secret word, assigns impostors and begins the reveal
// sequence at player zero. Blank names get a numbered placeholder.
func (g *Game) Start() error {
	if g.phase != PhaseNames {
		return ErrWrongPhase
	}

	word, err := g.words.Pick(g.config.Category)
	if err != nil {
		return err
	}
	g.secretWord = word

	roles := make([]bool, g.config.NumPlayers)
	picked := 0
	for picked < g.config.NumImpostors {
		idx := rand.Intn(g.config.NumPlayers)
		if roles[idx] {
			continue
		}
		roles[idx] = true
		picked++
	}

	g.players = make([]Player, g.config.NumPlayers)
	for i := range g.players {
		name := g.playerNames[i]
		if name == "" {
			name = fmt.Sprintf("Jugador %d", i+1)
		}
		g.players[i] = Player{Name: name, IsImpostor: roles[i]}
	}

	g.phase = PhaseReveal
	g.currentPlayer = 0
	g.showRole = false
	g.timeLeft = g.config.TimeLimit
	return nil
}

// RevealRole flips the "I am looking at my role" toggle for the player
// currently holding the device.
func (g *Game) RevealRole() error {
	if g.phase != PhaseReveal {
		return ErrWrongPhase
	}
	g.showRole = true
	return nil
}

// NextPlayer hands the device on. After the last player the playing order
// is shuffled and the round timer starts.
func (g *Game) NextPlayer() error {
	if g.phase != PhaseReveal {
		return ErrWrongPhase
	}

	if g.currentPlayer < g.config.NumPlayers-1 {
		g.currentPlayer++
		g.showRole = false
		return nil
	}

	g.playingOrder = make([]Player, len(g.players))
	copy(g.playingOrder, g.players)
	rand.Shuffle(len(g.playingOrder), func(i, j int) {
		g.playingOrder[i], g.playingOrder[j] = g.playingOrder[j], g.playingOrder[i]
	})
	g.phase = PhasePlaying
	g.timerRunning = true
	return nil
}

// Tick advances the countdown by one second. At zero the game ends.
func (g *Game) Tick() {
	if g.phase != PhasePlaying || !g.timerRunning {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.timerRunning = false
		g.phase = PhaseEnded
	}
}

func (g *Game) End() {
	g.timerRunning = false
	g.phase = PhaseEnded
}

// Reset returns to setup keeping the configuration and the typed names.
func (g *Game) Reset() {
	g.phase = PhaseSetup
	g.currentPlayer = 0
	g.showRole = false
	g.players = nil
	g.playingOrder = nil
	g.secretWord = ""
	g.timeLeft = g.config.TimeLimit
	g.timerRunning = false
}

func (g *Game) Phase() Phase           { return g.phase }
func (g *Game) Players() []Player      { return g.players }
func (g *Game) PlayingOrder() []Player { return g.playingOrder }
func (g *Game) SecretWord() string     { return g.secretWord }
func (g *Game) CurrentPlayer() int     { return g.currentPlayer }
func (g *Game) ShowRole() bool         { return g.showRole }
func (g *Game) TimeLeft() int          { return g.timeLeft }
func (g *Game) TimerRunning() bool     { return g.timerRunning }
