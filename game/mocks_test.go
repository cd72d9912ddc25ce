package game

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stevenD18skz/impostor-app/domain"
)

// --- testify mocks, for error-path and call-shape tests ---

type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) GetRoomByCode(ctx context.Context, code string) (domain.Room, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Room), args.Error(1)
}

func (m *MockRoomStore) GetPlayers(ctx context.Context, roomId string) ([]domain.Player, error) {
	args := m.Called(ctx, roomId)
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockRoomStore) CreateRoom(ctx context.Context, room domain.Room, hostName string) (domain.Room, domain.Player, error) {
	args := m.Called(ctx, room, hostName)
	return args.Get(0).(domain.Room), args.Get(1).(domain.Player), args.Error(2)
}

func (m *MockRoomStore) InsertPlayer(ctx context.Context, roomId, name string) (domain.Player, error) {
	args := m.Called(ctx, roomId, name)
	return args.Get(0).(domain.Player), args.Error(1)
}

func (m *MockRoomStore) UpdateSettings(ctx context.Context, roomId string, settings domain.Settings) error {
	return m.Called(ctx, roomId, settings).Error(0)
}

func (m *MockRoomStore) UpdateGameData(ctx context.Context, roomId string, gameData domain.GameData) error {
	return m.Called(ctx, roomId, gameData).Error(0)
}

func (m *MockRoomStore) SetState(ctx context.Context, roomId string, to domain.RoomState) error {
	return m.Called(ctx, roomId, to).Error(0)
}

func (m *MockRoomStore) TransitionState(ctx context.Context, roomId string, from, to domain.RoomState) (bool, error) {
	args := m.Called(ctx, roomId, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomStore) AppendReadyPlayer(ctx context.Context, roomId, name string) (domain.GameData, error) {
	args := m.Called(ctx, roomId, name)
	return args.Get(0).(domain.GameData), args.Error(1)
}

func (m *MockRoomStore) BeginPlaying(ctx context.Context, roomId string, startedAt time.Time) (bool, error) {
	args := m.Called(ctx, roomId, startedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomStore) UpdatePlayerRole(ctx context.Context, playerId string, isImpostor bool) error {
	return m.Called(ctx, playerId, isImpostor).Error(0)
}

func (m *MockRoomStore) PromoteHost(ctx context.Context, roomId, playerId, name string) error {
	return m.Called(ctx, roomId, playerId, name).Error(0)
}

func (m *MockRoomStore) DeletePlayer(ctx context.Context, playerId string) error {
	return m.Called(ctx, playerId).Error(0)
}

func (m *MockRoomStore) DeleteRoom(ctx context.Context, roomId string) error {
	return m.Called(ctx, roomId).Error(0)
}

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Create(ctx context.Context, playerName string) (CreateResult, error) {
	args := m.Called(ctx, playerName)
	return args.Get(0).(CreateResult), args.Error(1)
}

func (m *MockGameService) Join(ctx context.Context, code, playerName string) (JoinResult, error) {
	args := m.Called(ctx, code, playerName)
	return args.Get(0).(JoinResult), args.Error(1)
}

func (m *MockGameService) Rejoin(ctx context.Context, code, playerName string) (CreateResult, error) {
	args := m.Called(ctx, code, playerName)
	return args.Get(0).(CreateResult), args.Error(1)
}

func (m *MockGameService) Leave(ctx context.Context, code, playerName string) (LeaveResult, error) {
	args := m.Called(ctx, code, playerName)
	return args.Get(0).(LeaveResult), args.Error(1)
}

func (m *MockGameService) UpdateSettings(ctx context.Context, code string, patch SettingsPatch) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code, patch)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

func (m *MockGameService) StartGame(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

func (m *MockGameService) ConfirmRole(ctx context.Context, code, playerName string) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code, playerName)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

func (m *MockGameService) UpdateGame(ctx context.Context, code string, patch GameDataPatch) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code, patch)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

func (m *MockGameService) EndGame(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

func (m *MockGameService) ResetGame(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

func (m *MockGameService) Snapshot(ctx context.Context, code string) (domain.RoomSnapshot, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.RoomSnapshot), args.Error(1)
}

// --- fakes, for scenario tests where real store semantics matter ---

type fakeNotifier struct {
	mu    sync.Mutex
	codes []string
}

func (n *fakeNotifier) RoomChanged(code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes = append(n.codes, code)
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.codes)
}

type fakeWords struct {
	word     string
	category string
}

func (w fakeWords) Has(categoryId string) bool { return categoryId == w.category }
func (w fakeWords) DefaultCategory() string    { return w.category }
func (w fakeWords) Pick(categoryId string) (string, error) {
	if categoryId != w.category {
		return "", domain.ErrUnknownCategory
	}
	return w.word, nil
}

// fakeStore is an in-memory RoomStore whose conditional operations mirror
// the SQL they stand in for.
type fakeStore struct {
	mu      sync.Mutex
	rooms   map[string]*domain.Room
	byCode  map[string]string
	players map[string]*domain.Player
	nextId  int
	clock   time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:   make(map[string]*domain.Room),
		byCode:  make(map[string]string),
		players: make(map[string]*domain.Player),
		clock:   time.Unix(1700000000, 0),
	}
}

func (f *fakeStore) id() string {
	f.nextId++
	return "id-" + strconv.Itoa(f.nextId)
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) GetRoomByCode(ctx context.Context, code string) (domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byCode[code]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return *f.rooms[id], nil
}

func (f *fakeStore) GetPlayers(ctx context.Context, roomId string) ([]domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	players := []domain.Player{}
	for _, p := range f.players {
		if p.RoomId == roomId {
			players = append(players, *p)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].Id < players[j].Id
		}
		return players[i].JoinedAt.Before(players[j].JoinedAt)
	})
	return players, nil
}

func (f *fakeStore) CreateRoom(ctx context.Context, room domain.Room, hostName string) (domain.Room, domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byCode[room.Code]; exists {
		return domain.Room{}, domain.Player{}, domain.ErrCodeTaken
	}
	room.Id = f.id()
	room.UpdatedAt = f.tick()
	f.rooms[room.Id] = &room
	f.byCode[room.Code] = room.Id

	host := domain.Player{Id: f.id(), RoomId: room.Id, Name: hostName, IsHost: true, JoinedAt: f.tick()}
	f.players[host.Id] = &host
	return room, host, nil
}

func (f *fakeStore) InsertPlayer(ctx context.Context, roomId, name string) (domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.players {
		if p.RoomId == roomId && p.Name == name {
			return domain.Player{}, domain.ErrNameTaken
		}
	}
	player := domain.Player{Id: f.id(), RoomId: roomId, Name: name, JoinedAt: f.tick()}
	f.players[player.Id] = &player
	return player, nil
}

func (f *fakeStore) UpdateSettings(ctx context.Context, roomId string, settings domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if room, ok := f.rooms[roomId]; ok {
		room.Settings = settings
		room.UpdatedAt = f.tick()
	}
	return nil
}

func (f *fakeStore) UpdateGameData(ctx context.Context, roomId string, gameData domain.GameData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if room, ok := f.rooms[roomId]; ok {
		room.GameData = gameData
		room.UpdatedAt = f.tick()
	}
	return nil
}

func (f *fakeStore) SetState(ctx context.Context, roomId string, to domain.RoomState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if room, ok := f.rooms[roomId]; ok {
		room.State = to
		room.UpdatedAt = f.tick()
	}
	return nil
}

func (f *fakeStore) TransitionState(ctx context.Context, roomId string, from, to domain.RoomState) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[roomId]
	if !ok || room.State != from {
		return false, nil
	}
	room.State = to
	room.UpdatedAt = f.tick()
	return true, nil
}

func (f *fakeStore) AppendReadyPlayer(ctx context.Context, roomId, name string) (domain.GameData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[roomId]
	if !ok {
		return domain.GameData{}, domain.ErrRoomNotFound
	}
	present := false
	for _, n := range room.GameData.ReadyPlayers {
		if n == name {
			present = true
			break
		}
	}
	if !present {
		room.GameData.ReadyPlayers = append(room.GameData.ReadyPlayers, name)
	}
	room.UpdatedAt = f.tick()
	return room.GameData, nil
}

func (f *fakeStore) BeginPlaying(ctx context.Context, roomId string, startedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[roomId]
	if !ok || room.State != domain.StateReveal {
		return false, nil
	}
	room.State = domain.StatePlaying
	startMillis := startedAt.UnixMilli()
	room.GameData.StartTime = &startMillis
	room.UpdatedAt = f.tick()
	return true, nil
}

func (f *fakeStore) UpdatePlayerRole(ctx context.Context, playerId string, isImpostor bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.players[playerId]; ok {
		p.IsImpostor = isImpostor
	}
	return nil
}

func (f *fakeStore) PromoteHost(ctx context.Context, roomId, playerId, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.players[playerId]; ok {
		p.IsHost = true
	}
	if room, ok := f.rooms[roomId]; ok {
		room.Host = name
		room.UpdatedAt = f.tick()
	}
	return nil
}

func (f *fakeStore) DeletePlayer(ctx context.Context, playerId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.players, playerId)
	return nil
}

func (f *fakeStore) DeleteRoom(ctx context.Context, roomId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[roomId]
	if !ok {
		return nil
	}
	delete(f.byCode, room.Code)
	delete(f.rooms, roomId)
	for id, p := range f.players {
		if p.RoomId == roomId {
			delete(f.players, id)
		}
	}
	return nil
}
