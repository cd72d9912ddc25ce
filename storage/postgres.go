package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stevenD18skz/impostor-app/domain"
)

// PostgreSQL error code for unique_violation
const uniqueViolation = "23505"

type PostgresRoomRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRoomRepo(ctx context.Context, connString string) (*PostgresRoomRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresRoomRepo{pool: pool}, nil
}

func (r *PostgresRoomRepo) Close() {
	r.pool.Close()
}

func (r *PostgresRoomRepo) GetRoomByCode(ctx context.Context, code string) (domain.Room, error) {
	room := domain.Room{Code: code}

	row := r.pool.QueryRow(ctx,
		"SELECT id, host, state, settings, game_data, updated_at FROM rooms WHERE code = $1", code)

	err := row.Scan(&room.Id, &room.Host, &room.State, &room.Settings, &room.GameData, &room.UpdatedAt)
	if err != nil {
		return domain.Room{}, mapError(err, domain.ErrRoomNotFound)
	}

	return room, nil
}

// GetPlayers returns the room's players ordered by join time, the order host
// transfer walks on leave.
func (r *PostgresRoomRepo) GetPlayers(ctx context.Context, roomId string) ([]domain.Player, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, room_id, name, is_host, is_impostor, joined_at FROM players WHERE room_id = $1 ORDER BY joined_at, id", roomId)
	if err != nil {
		return nil, mapError(err, nil)
	}
	defer rows.Close()

	players := []domain.Player{}
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.Id, &p.RoomId, &p.Name, &p.IsHost, &p.IsImpostor, &p.JoinedAt); err != nil {
			return nil, mapError(err, nil)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, nil)
	}

	return players, nil
}

// CreateRoom inserts the room and its host player. Returns ErrCodeTaken on a
// room code collision so the caller can regenerate and retry.
func (r *PostgresRoomRepo) CreateRoom(ctx context.Context, room domain.Room, hostName string) (domain.Room, domain.Player, error) {
	row := r.pool.QueryRow(ctx,
		"INSERT INTO rooms(code, host, state, settings, game_data) VALUES($1, $2, $3, $4, $5) RETURNING id, updated_at",
		room.Code, room.Host, room.State, room.Settings, room.GameData)

	if err := row.Scan(&room.Id, &room.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Room{}, domain.Player{}, domain.ErrCodeTaken
		}
		return domain.Room{}, domain.Player{}, mapError(err, nil)
	}

	host := domain.Player{RoomId: room.Id, Name: hostName, IsHost: true}
	row = r.pool.QueryRow(ctx,
		"INSERT INTO players(room_id, name, is_host) VALUES($1, $2, true) RETURNING id, joined_at",
		room.Id, hostName)
	if err := row.Scan(&host.Id, &host.JoinedAt); err != nil {
		return domain.Room{}, domain.Player{}, mapError(err, nil)
	}

	return room, host, nil
}

func (r *PostgresRoomRepo) InsertPlayer(ctx context.Context, roomId, name string) (domain.Player, error) {
	p := domain.Player{RoomId: roomId, Name: name}

	row := r.pool.QueryRow(ctx,
		"INSERT INTO players(room_id, name) VALUES($1, $2) RETURNING id, joined_at", roomId, name)

	if err := row.Scan(&p.Id, &p.JoinedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Player{}, domain.ErrNameTaken
		}
		return domain.Player{}, mapError(err, nil)
	}

	return p, nil
}

func (r *PostgresRoomRepo) UpdateSettings(ctx context.Context, roomId string, settings domain.Settings) error {
	return r.exec(ctx, "UPDATE rooms SET settings = $2, updated_at = now() WHERE id = $1", roomId, settings)
}

func (r *PostgresRoomRepo) UpdateGameData(ctx context.Context, roomId string, gameData domain.GameData) error {
	return r.exec(ctx, "UPDATE rooms SET game_data = $2, updated_at = now() WHERE id = $1", roomId, gameData)
}

func (r *PostgresRoomRepo) SetState(ctx context.Context, roomId string, to domain.RoomState) error {
	return r.exec(ctx, "UPDATE rooms SET state = $2, updated_at = now() WHERE id = $1", roomId, to)
}

// TransitionState is the optimistic guard against concurrent transitions:
// the write only lands if the room is still in the expected state. Returns
// false when another caller already moved it.
func (r *PostgresRoomRepo) TransitionState(ctx context.Context, roomId string, from, to domain.RoomState) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		"UPDATE rooms SET state = $3, updated_at = now() WHERE id = $1 AND state = $2", roomId, from, to)
	if err != nil {
		return false, mapError(err, nil)
	}
	return tag.RowsAffected() > 0, nil
}

// AppendReadyPlayer appends the name to game_data.readyPlayers in a single
// statement, skipping the append when the name is already present. Two
// players confirming at once therefore cannot lose an update. Returns the
// game data as persisted after the call.
func (r *PostgresRoomRepo) AppendReadyPlayer(ctx context.Context, roomId, name string) (domain.GameData, error) {
	var gameData domain.GameData

	row := r.pool.QueryRow(ctx, `
		UPDATE rooms
		SET game_data = CASE
			WHEN game_data->'readyPlayers' ? $2 THEN game_data
			ELSE jsonb_set(game_data, '{readyPlayers}', (game_data->'readyPlayers') || to_jsonb($2::text))
		END,
		updated_at = now()
		WHERE id = $1
		RETURNING game_data`, roomId, name)

	if err := row.Scan(&gameData); err != nil {
		return domain.GameData{}, mapError(err, domain.ErrRoomNotFound)
	}

	return gameData, nil
}

// BeginPlaying stamps the round start and moves reveal -> playing, guarded
// the same way as TransitionState so the all-ready transition fires once.
func (r *PostgresRoomRepo) BeginPlaying(ctx context.Context, roomId string, startedAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rooms
		SET state = 'playing',
		    game_data = jsonb_set(game_data, '{startTime}', to_jsonb($2::bigint)),
		    updated_at = now()
		WHERE id = $1 AND state = 'reveal'`, roomId, startedAt.UnixMilli())
	if err != nil {
		return false, mapError(err, nil)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRoomRepo) UpdatePlayerRole(ctx context.Context, playerId string, isImpostor bool) error {
	return r.exec(ctx, "UPDATE players SET is_impostor = $2 WHERE id = $1", playerId, isImpostor)
}

// PromoteHost flips the player's is_host and mirrors the name onto the room
// record. Two writes, no transaction needed: both are idempotent and converge.
func (r *PostgresRoomRepo) PromoteHost(ctx context.Context, roomId, playerId, name string) error {
	if err := r.exec(ctx, "UPDATE players SET is_host = true WHERE id = $1", playerId); err != nil {
		return err
	}
	return r.exec(ctx, "UPDATE rooms SET host = $2, updated_at = now() WHERE id = $1", roomId, name)
}

func (r *PostgresRoomRepo) DeletePlayer(ctx context.Context, playerId string) error {
	return r.exec(ctx, "DELETE FROM players WHERE id = $1", playerId)
}

// DeleteRoom removes the room; players go with it via ON DELETE CASCADE.
func (r *PostgresRoomRepo) DeleteRoom(ctx context.Context, roomId string) error {
	return r.exec(ctx, "DELETE FROM rooms WHERE id = $1", roomId)
}

func (r *PostgresRoomRepo) exec(ctx context.Context, sql string, args ...any) error {
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return mapError(err, nil)
	}
	return nil
}

func mapError(err error, notFound error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if notFound != nil {
			return notFound
		}
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
}
