package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"roombooking/internal/domain/room"
	"roombooking/internal/infra"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

const roomColumns = `
	id, name, location, capacity, price_per_hour, price_per_day, amenities, description`

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*room.Room, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE id = $1`,
		id,
	)
	rm, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

// FindAll applies the filter in SQL; zero values disable the corresponding
// bound. Location matches as a case-insensitive substring.
func (r *RoomRepository) FindAll(ctx context.Context, filter queries.RoomFilter) ([]*room.Room, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", placeholder(len(args))))
	}

	if filter.MinCapacity > 0 {
		add("capacity >= ?", filter.MinCapacity)
	}
	if filter.MaxCapacity > 0 {
		add("capacity <= ?", filter.MaxCapacity)
	}
	if filter.Location != "" {
		add("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.MinPrice > 0 {
		add("price_per_hour >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		add("price_per_hour <= ?", filter.MaxPrice)
	}

	query := `SELECT ` + roomColumns + ` FROM rooms`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var out []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return out, nil
}

// Seed replaces the catalog contents in one transaction.
func (r *RoomRepository) Seed(ctx context.Context, rooms []*room.Room) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin seed transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM rooms`); err != nil {
		return 0, infra.WrapRepoErr("failed to clear rooms", err)
	}

	for _, rm := range rooms {
		if _, err := tx.Exec(ctx, `
			INSERT INTO rooms (`+roomColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			rm.ID(), rm.Name(), rm.Location(), rm.Capacity(),
			rm.PricePerHour(), rm.PricePerDay(), rm.Amenities(), rm.Description(),
		); err != nil {
			return 0, infra.WrapRepoErr("failed to insert room", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit seed transaction", err)
	}
	return len(rooms), nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id, name, location, description string
		capacity                        int
		perHour, perDay                 float64
		amenities                       []string
	)
	if err := row.Scan(&id, &name, &location, &capacity, &perHour, &perDay, &amenities, &description); err != nil {
		return nil, err
	}
	rm, err := room.NewRoom(id, name, location, capacity, perHour, perDay, amenities, description)
	if err != nil {
		return nil, errs.Wrap(err, "stored room is invalid")
	}
	return rm, nil
}
