package storage_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stevenD18skz/impostor-app/domain"
	"github.com/stevenD18skz/impostor-app/migrations"
	"github.com/stevenD18skz/impostor-app/storage"
)

var repo *storage.PostgresRoomRepo

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testusername"),
		postgres.WithPassword("testpassword"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		panic(err)
	}

	connString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	if err := migrations.Migrate(connString); err != nil {
		panic(err)
	}

	repo, err = storage.NewPostgresRoomRepo(ctx, connString)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	// Cleanup
	repo.Close()
	postgresContainer.Terminate(ctx)
	os.Exit(code)
}

func makeRoom(t *testing.T, code string) domain.Room {
	t.Helper()
	room := domain.Room{
		Code:  code,
		Host:  "Host",
		State: domain.StateSetup,
		Settings: domain.Settings{
			Category:     "comida",
			NumImpostors: 1,
			TimeLimit:    180,
		},
		GameData: domain.NewGameData(180),
	}
	created, _, err := repo.CreateRoom(context.Background(), room, "Host")
	require.NoError(t, err)
	return created
}

func TestCreateRoomAndGet(t *testing.T) {
	ctx := context.Background()
	created := makeRoom(t, "AAAAA1")

	assert.NotEmpty(t, created.Id)

	got, err := repo.GetRoomByCode(ctx, "AAAAA1")
	require.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, "Host", got.Host)
	assert.Equal(t, domain.StateSetup, got.State)
	assert.Equal(t, domain.Settings{Category: "comida", NumImpostors: 1, TimeLimit: 180}, got.Settings)
	assert.Equal(t, 180, got.GameData.TimeLeft)
	assert.Empty(t, got.GameData.ReadyPlayers)

	players, err := repo.GetPlayers(ctx, got.Id)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Host", players[0].Name)
	assert.True(t, players[0].IsHost)
}

func TestCreateRoom_DuplicateCode(t *testing.T) {
	makeRoom(t, "AAAAA2")

	_, _, err := repo.CreateRoom(context.Background(), domain.Room{
		Code:     "AAAAA2",
		Host:     "Other",
		State:    domain.StateSetup,
		GameData: domain.NewGameData(180),
	}, "Other")
	assert.ErrorIs(t, err, domain.ErrCodeTaken)
}

func TestGetRoomByCode_NotFound(t *testing.T) {
	_, err := repo.GetRoomByCode(context.Background(), "GHOST1")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestInsertPlayer(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAA3")

	p2, err := repo.InsertPlayer(ctx, room.Id, "Player2")
	require.NoError(t, err)
	assert.False(t, p2.IsHost)
	assert.False(t, p2.IsImpostor)

	_, err = repo.InsertPlayer(ctx, room.Id, "Player2")
	assert.ErrorIs(t, err, domain.ErrNameTaken)

	// The uniqueness scope is the room, not the table.
	other := makeRoom(t, "AAAAA4")
	_, err = repo.InsertPlayer(ctx, other.Id, "Player2")
	assert.NoError(t, err)

	players, err := repo.GetPlayers(ctx, room.Id)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Host", players[0].Name, "players must come back in join order")
	assert.Equal(t, "Player2", players[1].Name)
}

func TestTransitionState(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAA5")

	ok, err := repo.TransitionState(ctx, room.Id, domain.StateSetup, domain.StateReveal)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second transition from setup must lose: the room already moved.
	ok, err = repo.TransitionState(ctx, room.Id, domain.StateSetup, domain.StateReveal)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetRoomByCode(ctx, "AAAAA5")
	require.NoError(t, err)
	assert.Equal(t, domain.StateReveal, got.State)
}

func TestAppendReadyPlayer_Idempotent(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAA6")

	gameData, err := repo.AppendReadyPlayer(ctx, room.Id, "Host")
	require.NoError(t, err)
	assert.Equal(t, []string{"Host"}, gameData.ReadyPlayers)

	gameData, err = repo.AppendReadyPlayer(ctx, room.Id, "Host")
	require.NoError(t, err)
	assert.Equal(t, []string{"Host"}, gameData.ReadyPlayers)

	gameData, err = repo.AppendReadyPlayer(ctx, room.Id, "Player2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Host", "Player2"}, gameData.ReadyPlayers)
}

func TestBeginPlaying(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAA7")
	startedAt := time.Now()

	// Not in reveal yet, so the guard rejects it.
	ok, err := repo.BeginPlaying(ctx, room.Id, startedAt)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.TransitionState(ctx, room.Id, domain.StateSetup, domain.StateReveal)
	require.NoError(t, err)

	ok, err = repo.BeginPlaying(ctx, room.Id, startedAt)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetRoomByCode(ctx, "AAAAA7")
	require.NoError(t, err)
	assert.Equal(t, domain.StatePlaying, got.State)
	require.NotNil(t, got.GameData.StartTime)
	assert.Equal(t, startedAt.UnixMilli(), *got.GameData.StartTime)
}

func TestUpdateGameDataAndRoles(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAA8")

	players, err := repo.GetPlayers(ctx, room.Id)
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePlayerRole(ctx, players[0].Id, true))

	gameData := domain.GameData{
		SecretWord:   "Pizza",
		TimeLeft:     180,
		PlayingOrder: []domain.Player{{Name: "Host", IsImpostor: true}},
		ReadyPlayers: []string{},
	}
	require.NoError(t, repo.UpdateGameData(ctx, room.Id, gameData))

	got, err := repo.GetRoomByCode(ctx, "AAAAA8")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.GameData.SecretWord)
	require.Len(t, got.GameData.PlayingOrder, 1)
	assert.True(t, got.GameData.PlayingOrder[0].IsImpostor)

	players, err = repo.GetPlayers(ctx, room.Id)
	require.NoError(t, err)
	assert.True(t, players[0].IsImpostor)
}

func TestPromoteHost(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAA9")

	p2, err := repo.InsertPlayer(ctx, room.Id, "Player2")
	require.NoError(t, err)

	require.NoError(t, repo.PromoteHost(ctx, room.Id, p2.Id, "Player2"))

	got, err := repo.GetRoomByCode(ctx, "AAAAA9")
	require.NoError(t, err)
	assert.Equal(t, "Player2", got.Host)

	players, err := repo.GetPlayers(ctx, room.Id)
	require.NoError(t, err)
	for _, p := range players {
		if p.Name == "Player2" {
			assert.True(t, p.IsHost)
		}
	}
}

func TestDeleteRoom_CascadesPlayers(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAB1")

	_, err := repo.InsertPlayer(ctx, room.Id, "Player2")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRoom(ctx, room.Id))

	_, err = repo.GetRoomByCode(ctx, "AAAAB1")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	players, err := repo.GetPlayers(ctx, room.Id)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestDeletePlayer(t *testing.T) {
	ctx := context.Background()
	room := makeRoom(t, "AAAAB2")

	p2, err := repo.InsertPlayer(ctx, room.Id, "Player2")
	require.NoError(t, err)

	require.NoError(t, repo.DeletePlayer(ctx, p2.Id))

	players, err := repo.GetPlayers(ctx, room.Id)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Host", players[0].Name)
}
