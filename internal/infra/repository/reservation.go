package repository

import (
	"context"
	"errors"
	"time"

	"roombooking/internal/domain/booking"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository is the Postgres reservation ledger. The partial
// unique index on (room_id, date) WHERE status = 'confirmed' makes
// TryReserve atomic without an explicit transaction.
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const reservationColumns = `
	id, room_id, room_name, location, date,
	client_name, client_email,
	base_price, temperature_c, temperature_diff,
	surcharge_pct, surcharge_amount, final_price,
	status, booked_at, cancelled_at`

func (r *ReservationRepository) TryReserve(ctx context.Context, res *booking.Reservation) error {
	q := res.Price()
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULL)
		ON CONFLICT (room_id, date) WHERE status = 'confirmed' DO NOTHING`,
		res.ID(), res.RoomID(), res.RoomName(), res.Location(), res.Date().String(),
		res.Client().Name(), res.Client().Email(),
		q.BasePrice, q.TemperatureC, q.TemperatureDiff,
		q.SurchargePct, q.SurchargeAmount, q.FinalPrice,
		res.Status().String(), res.BookedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot already reserved", errs.New("duplicate reservation"), infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reservations
		SET status = 'cancelled', cancelled_at = $2
		WHERE id = $1 AND status = 'confirmed'`,
		id, at,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish already-cancelled (idempotent success) from unknown id.
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check reservation", err)
		}
		if !exists {
			return infra.WrapRepoErr("reservation not found", errs.New("unknown reservation id"), infra.KindNotFound)
		}
	}
	return nil
}

func (r *ReservationRepository) FindActiveByRoomDate(ctx context.Context, roomID, date string) (*booking.Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE room_id = $1 AND date = $2 AND status = 'confirmed'`,
		roomID, date,
	)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = $1`,
		id,
	)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) FindByClientEmail(ctx context.Context, email string) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE lower(client_email) = lower($1)
		ORDER BY booked_at, id`,
		email,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by client", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*booking.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		ORDER BY booked_at, id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*booking.Reservation, error) {
	var out []*booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return out, nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		id                    uuid.UUID
		roomID, roomName      string
		location, dateStr     string
		clientName, email     string
		q                     pricing.Quote
		statusStr             string
		bookedAt              time.Time
		cancelledAt           *time.Time
	)
	if err := row.Scan(
		&id, &roomID, &roomName, &location, &dateStr,
		&clientName, &email,
		&q.BasePrice, &q.TemperatureC, &q.TemperatureDiff,
		&q.SurchargePct, &q.SurchargeAmount, &q.FinalPrice,
		&statusStr, &bookedAt, &cancelledAt,
	); err != nil {
		return nil, err
	}

	date, err := booking.NewDate(dateStr)
	if err != nil {
		return nil, errs.Wrap(err, "stored date is invalid")
	}
	client, err := booking.NewClientInfo(clientName, email)
	if err != nil {
		return nil, errs.Wrap(err, "stored client is invalid")
	}

	return booking.ReconstructReservation(
		id, roomID, roomName, location, date, client, q,
		booking.Status(statusStr), bookedAt, cancelledAt,
	), nil
}
