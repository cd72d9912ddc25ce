package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/stevenD18skz/impostor-app/domain"
)

const (
	defaultNumImpostors = 1
	defaultTimeLimit    = 180
)

// Service is the game engine: one method per action, each a short sequence
// of reads and writes against the RoomStore. Successful mutations signal the
// notifier so watching clients refetch the snapshot.
type Service struct {
	store      RoomStore
	words      WordSource
	notifier   Notifier
	minPlayers int
	now        func() time.Time
}

func NewService(store RoomStore, words WordSource, notifier Notifier, minPlayers int) *Service {
	return &Service{
		store:      store,
		words:      words,
		notifier:   notifier,
		minPlayers: minPlayers,
		now:        time.Now,
	}
}

// Create allocates a fresh room with the requesting player as host.
func (s *Service) Create(ctx context.Context, playerName string) (CreateResult, error) {
	settings := domain.Settings{
		Category:     s.words.DefaultCategory(),
		NumImpostors: defaultNumImpostors,
		TimeLimit:    defaultTimeLimit,
	}

	var room domain.Room
	var host domain.Player
	for attempt := 0; ; attempt++ {
		candidate := domain.Room{
			Code:     newRoomCode(),
			Host:     playerName,
			State:    domain.StateSetup,
			Settings: settings,
			GameData: domain.NewGameData(settings.TimeLimit),
		}

		created, hostPlayer, err := s.store.CreateRoom(ctx, candidate, playerName)
		if err == nil {
			room, host = created, hostPlayer
			break
		}
		if err != domain.ErrCodeTaken || attempt+1 >= maxCodeAttempts {
			return CreateResult{}, err
		}
	}

	return CreateResult{
		RoomCode: room.Code,
		Room:     domain.RoomSnapshot{Room: room, Players: []domain.Player{host}},
		MyPlayer: host,
	}, nil
}

// Join appends a non-host player, rejected once the game has started or when
// the name is already taken in that room (case-sensitive).
func (s *Service) Join(ctx context.Context, code, playerName string) (JoinResult, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return JoinResult{}, err
	}

	if room.State != domain.StateSetup {
		return JoinResult{}, domain.ErrGameAlreadyStarted
	}

	player, err := s.store.InsertPlayer(ctx, room.Id, playerName)
	if err != nil {
		return JoinResult{}, err
	}

	snapshot, err := s.snapshot(ctx, room)
	if err != nil {
		return JoinResult{}, err
	}

	s.notifier.RoomChanged(code)
	return JoinResult{Room: snapshot, MyPlayer: player}, nil
}

// Rejoin is the reconnect primitive: it returns the current snapshot and the
// caller's player record without mutating anything.
func (s *Service) Rejoin(ctx context.Context, code, playerName string) (CreateResult, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return CreateResult{}, err
	}

	snapshot, err := s.snapshot(ctx, room)
	if err != nil {
		return CreateResult{}, err
	}

	player, ok := findPlayer(snapshot.Players, playerName)
	if !ok {
		return CreateResult{}, domain.ErrPlayerNotFound
	}

	return CreateResult{RoomCode: code, Room: snapshot, MyPlayer: player}, nil
}

// Leave removes the player. The last player out takes the room with them;
// a departing host hands the role to the earliest-joined remaining player.
func (s *Service) Leave(ctx context.Context, code, playerName string) (LeaveResult, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return LeaveResult{}, err
	}

	players, err := s.store.GetPlayers(ctx, room.Id)
	if err != nil {
		return LeaveResult{}, err
	}

	leaving, ok := findPlayer(players, playerName)
	if !ok {
		return LeaveResult{}, domain.ErrPlayerNotFound
	}

	if len(players) == 1 {
		if err := s.store.DeleteRoom(ctx, room.Id); err != nil {
			return LeaveResult{}, err
		}
		s.notifier.RoomChanged(code)
		return LeaveResult{Success: true, RoomDeleted: true}, nil
	}

	if err := s.store.DeletePlayer(ctx, leaving.Id); err != nil {
		return LeaveResult{}, err
	}

	if leaving.IsHost {
		for _, p := range players {
			if p.Id == leaving.Id {
				continue
			}
			if err := s.store.PromoteHost(ctx, room.Id, p.Id, p.Name); err != nil {
				return LeaveResult{}, err
			}
			break
		}
	}

	s.notifier.RoomChanged(code)
	return LeaveResult{Success: true}, nil
}

// UpdateSettings merges the patch into the room settings. Settings lock once
// the round starts.
func (s *Service) UpdateSettings(ctx context.Context, code string, patch SettingsPatch) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	if room.State != domain.StateSetup {
		return domain.RoomSnapshot{}, domain.ErrGameAlreadyStarted
	}

	settings := room.Settings
	if patch.Category != nil {
		if !s.words.Has(*patch.Category) {
			return domain.RoomSnapshot{}, domain.ErrUnknownCategory
		}
		settings.Category = *patch.Category
	}
	if patch.NumImpostors != nil {
		if *patch.NumImpostors < 1 {
			return domain.RoomSnapshot{}, domain.ErrTooManyImpostors
		}
		settings.NumImpostors = *patch.NumImpostors
	}
	if patch.TimeLimit != nil && *patch.TimeLimit > 0 {
		settings.TimeLimit = *patch.TimeLimit
	}

	if err := s.store.UpdateSettings(ctx, room.Id, settings); err != nil {
		return domain.RoomSnapshot{}, err
	}
	room.Settings = settings

	snapshot, err := s.snapshot(ctx, room)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	s.notifier.RoomChanged(code)
	return snapshot, nil
}

// StartGame picks the secret word, assigns impostor roles, shuffles the
// playing order and moves the room into reveal. The setup -> reveal
// transition is a conditional write, so a doubled start loses cleanly
// instead of re-rolling roles over a live round.
func (s *Service) StartGame(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	players, err := s.store.GetPlayers(ctx, room.Id)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	if len(players) < s.minPlayers {
		return domain.RoomSnapshot{}, domain.ErrNotEnoughPlayers
	}
	if room.Settings.NumImpostors >= len(players) {
		return domain.RoomSnapshot{}, domain.ErrTooManyImpostors
	}

	secretWord, err := s.words.Pick(room.Settings.Category)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	ok, err := s.store.TransitionState(ctx, room.Id, domain.StateSetup, domain.StateReveal)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	if !ok {
		return domain.RoomSnapshot{}, domain.ErrGameAlreadyStarted
	}

	impostors := pickImpostors(len(players), room.Settings.NumImpostors)
	for i := range players {
		players[i].IsImpostor = impostors[i]
		if err := s.store.UpdatePlayerRole(ctx, players[i].Id, players[i].IsImpostor); err != nil {
			return domain.RoomSnapshot{}, err
		}
	}

	order := make([]domain.Player, len(players))
	copy(order, players)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	gameData := domain.GameData{
		SecretWord:   secretWord,
		TimeLeft:     room.Settings.TimeLimit,
		PlayingOrder: order,
		ReadyPlayers: []string{},
	}
	if err := s.store.UpdateGameData(ctx, room.Id, gameData); err != nil {
		return domain.RoomSnapshot{}, err
	}

	room.State = domain.StateReveal
	room.GameData = gameData
	snapshot := domain.RoomSnapshot{Room: room, Players: players}

	s.notifier.RoomChanged(code)
	return snapshot, nil
}

// ConfirmRole marks the player as having seen their role. Adding a name
// already present is a no-op. Once every player has confirmed, the round
// clock starts and the room moves to playing.
func (s *Service) ConfirmRole(ctx context.Context, code, playerName string) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	gameData, err := s.store.AppendReadyPlayer(ctx, room.Id, playerName)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	room.GameData = gameData

	players, err := s.store.GetPlayers(ctx, room.Id)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	if len(gameData.ReadyPlayers) == len(players) {
		startedAt := s.now()
		started, err := s.store.BeginPlaying(ctx, room.Id, startedAt)
		if err != nil {
			return domain.RoomSnapshot{}, err
		}
		if started {
			room.State = domain.StatePlaying
			startMillis := startedAt.UnixMilli()
			room.GameData.StartTime = &startMillis
		}
	}

	snapshot := s.withDerivedClock(domain.RoomSnapshot{Room: room, Players: players})

	s.notifier.RoomChanged(code)
	return snapshot, nil
}

// UpdateGame merges a driving client's turn advance into the game data. The
// round clock is never taken from clients.
func (s *Service) UpdateGame(ctx context.Context, code string, patch GameDataPatch) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	gameData := room.GameData
	if patch.CurrentPlayerIndex != nil {
		gameData.CurrentPlayerIndex = *patch.CurrentPlayerIndex
	}

	if err := s.store.UpdateGameData(ctx, room.Id, gameData); err != nil {
		return domain.RoomSnapshot{}, err
	}
	room.GameData = gameData

	snapshot, err := s.snapshot(ctx, room)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	s.notifier.RoomChanged(code)
	return snapshot, nil
}

// EndGame forces the room into ended regardless of current state.
func (s *Service) EndGame(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	if err := s.store.SetState(ctx, room.Id, domain.StateEnded); err != nil {
		return domain.RoomSnapshot{}, err
	}
	room.State = domain.StateEnded

	snapshot, err := s.snapshot(ctx, room)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	s.notifier.RoomChanged(code)
	return snapshot, nil
}

// ResetGame clears roles and round data and returns the room to setup.
func (s *Service) ResetGame(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	players, err := s.store.GetPlayers(ctx, room.Id)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}

	for i := range players {
		if !players[i].IsImpostor {
			continue
		}
		players[i].IsImpostor = false
		if err := s.store.UpdatePlayerRole(ctx, players[i].Id, false); err != nil {
			return domain.RoomSnapshot{}, err
		}
	}

	gameData := domain.NewGameData(room.Settings.TimeLimit)
	if err := s.store.UpdateGameData(ctx, room.Id, gameData); err != nil {
		return domain.RoomSnapshot{}, err
	}
	if err := s.store.SetState(ctx, room.Id, domain.StateSetup); err != nil {
		return domain.RoomSnapshot{}, err
	}

	room.State = domain.StateSetup
	room.GameData = gameData
	snapshot := domain.RoomSnapshot{Room: room, Players: players}

	s.notifier.RoomChanged(code)
	return snapshot, nil
}

// Snapshot is the fetch-by-code query backing both polling clients and
// change-notify refetches.
func (s *Service) Snapshot(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	room, err := s.store.GetRoomByCode(ctx, code)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	return s.snapshot(ctx, room)
}

func (s *Service) snapshot(ctx context.Context, room domain.Room) (domain.RoomSnapshot, error) {
	players, err := s.store.GetPlayers(ctx, room.Id)
	if err != nil {
		return domain.RoomSnapshot{}, err
	}
	return s.withDerivedClock(domain.RoomSnapshot{Room: room, Players: players}), nil
}

// withDerivedClock recomputes timeLeft from the persisted start time, so
// every reader agrees on the countdown without any client syncing ticks.
func (s *Service) withDerivedClock(snapshot domain.RoomSnapshot) domain.RoomSnapshot {
	if snapshot.State != domain.StatePlaying || snapshot.GameData.StartTime == nil {
		return snapshot
	}
	elapsed := int((s.now().UnixMilli() - *snapshot.GameData.StartTime) / 1000)
	snapshot.GameData.TimeLeft = max(0, snapshot.Settings.TimeLimit-elapsed)
	return snapshot
}

// pickImpostors draws distinct indices by rejection sampling until the
// required count is collected.
func pickImpostors(numPlayers, numImpostors int) []bool {
	impostors := make([]bool, numPlayers)
	picked := 0
	for picked < numImpostors {
		idx := rand.Intn(numPlayers)
		if impostors[idx] {
			continue
		}
		impostors[idx] = true
		picked++
	}
	return impostors
}

func findPlayer(players []domain.Player, name string) (domain.Player, bool) {
	for _, p := range players {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Player{}, false
}
