package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The partial unique index on reservations is what enforces one confirmed
// booking per (room, date); TryReserve relies on it racing safely.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS rooms (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	location TEXT NOT NULL,
	capacity INT NOT NULL,
	price_per_hour NUMERIC(10,2) NOT NULL,
	price_per_day NUMERIC(10,2) NOT NULL,
	amenities TEXT[] NOT NULL DEFAULT '{}',
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS forecasts (
	location TEXT NOT NULL,
	date TEXT NOT NULL,
	temperature_c DOUBLE PRECISION NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL,
	base_price DOUBLE PRECISION NOT NULL,
	temperature_diff DOUBLE PRECISION NOT NULL,
	surcharge_pct DOUBLE PRECISION NOT NULL,
	surcharge_amount DOUBLE PRECISION NOT NULL,
	final_price DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (location, date)
);

CREATE TABLE IF NOT EXISTS reservations (
	id UUID PRIMARY KEY,
	room_id TEXT NOT NULL,
	room_name TEXT NOT NULL,
	location TEXT NOT NULL,
	date TEXT NOT NULL,
	client_name TEXT NOT NULL,
	client_email TEXT NOT NULL,
	base_price DOUBLE PRECISION NOT NULL,
	temperature_c DOUBLE PRECISION NOT NULL,
	temperature_diff DOUBLE PRECISION NOT NULL,
	surcharge_pct DOUBLE PRECISION NOT NULL,
	surcharge_amount DOUBLE PRECISION NOT NULL,
	final_price DOUBLE PRECISION NOT NULL,
	status TEXT NOT NULL,
	booked_at TIMESTAMPTZ NOT NULL,
	cancelled_at TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_active_slot
	ON reservations (room_id, date) WHERE status = 'confirmed';

CREATE INDEX IF NOT EXISTS idx_reservations_client_email
	ON reservations (lower(client_email));
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
