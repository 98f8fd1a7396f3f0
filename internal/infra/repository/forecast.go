package repository

import (
	"context"
	"errors"

	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra"
	"roombooking/internal/usecase/weather"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ForecastRepository is the Postgres forecast store. The (location, date)
// primary key plus ON CONFLICT DO NOTHING gives InsertIfAbsent its
// first-writer-wins semantics.
type ForecastRepository struct {
	pool *pgxpool.Pool
}

func NewForecastRepository(pool *pgxpool.Pool) *ForecastRepository {
	return &ForecastRepository{pool: pool}
}

const forecastColumns = `
	location, date, temperature_c, generated_at,
	base_price, temperature_diff, surcharge_pct, surcharge_amount, final_price`

func (r *ForecastRepository) Find(ctx context.Context, location, date string) (*weather.Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+forecastColumns+`
		FROM forecasts
		WHERE location = $1 AND date = $2`,
		location, date,
	)
	e, err := scanForecast(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("forecast not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find forecast", err)
	}
	return e, nil
}

func (r *ForecastRepository) InsertIfAbsent(ctx context.Context, e weather.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO forecasts (`+forecastColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (location, date) DO NOTHING`,
		e.Location, e.Date, e.TemperatureC, e.GeneratedAt,
		e.Pricing.BasePrice, e.Pricing.TemperatureDiff,
		e.Pricing.SurchargePct, e.Pricing.SurchargeAmount, e.Pricing.FinalPrice,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert forecast", err)
	}
	return nil
}

func (r *ForecastRepository) UpdatePricing(ctx context.Context, location, date string, q pricing.Quote) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE forecasts
		SET base_price = $3, temperature_diff = $4,
		    surcharge_pct = $5, surcharge_amount = $6, final_price = $7
		WHERE location = $1 AND date = $2`,
		location, date,
		q.BasePrice, q.TemperatureDiff, q.SurchargePct, q.SurchargeAmount, q.FinalPrice,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update forecast pricing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("forecast not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ForecastRepository) ListByLocation(ctx context.Context, location string) ([]weather.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+forecastColumns+`
		FROM forecasts
		WHERE lower(location) = lower($1)
		ORDER BY date`,
		location,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list forecasts by location", err)
	}
	defer rows.Close()
	return collectForecasts(rows)
}

func (r *ForecastRepository) ListAll(ctx context.Context) ([]weather.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+forecastColumns+`
		FROM forecasts
		ORDER BY location, date`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list forecasts", err)
	}
	defer rows.Close()
	return collectForecasts(rows)
}

func collectForecasts(rows pgx.Rows) ([]weather.Entry, error) {
	var out []weather.Entry
	for rows.Next() {
		e, err := scanForecast(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan forecast", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate forecasts", err)
	}
	return out, nil
}

func scanForecast(row pgx.Row) (*weather.Entry, error) {
	var e weather.Entry
	if err := row.Scan(
		&e.Location, &e.Date, &e.TemperatureC, &e.GeneratedAt,
		&e.Pricing.BasePrice, &e.Pricing.TemperatureDiff,
		&e.Pricing.SurchargePct, &e.Pricing.SurchargeAmount, &e.Pricing.FinalPrice,
	); err != nil {
		return nil, err
	}
	e.Pricing.TemperatureC = e.TemperatureC
	return &e, nil
}
