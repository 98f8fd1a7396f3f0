package components

import (
	"context"
	"time"

	"roombooking/internal/infra/db"
	"roombooking/internal/infra/memory"
	"roombooking/internal/infra/repository"
	"roombooking/internal/pkg/config"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/commands"
	"roombooking/internal/usecase/queries"
	"roombooking/internal/usecase/weather"

	"go.uber.org/fx"
)

// Stores bundles the persistence implementations behind the usecase ports so
// the driver can be swapped without touching anything above it.
type Stores struct {
	ReservationWriter commands.ReservationWriter
	ReservationReader queries.ReservationReader
	ForecastRepo      weather.Repository
	RoomReader        queries.RoomReader
	RoomWriter        commands.RoomWriter
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		func(s *Stores) commands.ReservationWriter { return s.ReservationWriter },
		func(s *Stores) queries.ReservationReader { return s.ReservationReader },
		func(s *Stores) weather.Repository { return s.ForecastRepo },
		func(s *Stores) queries.RoomReader { return s.RoomReader },
		func(s *Stores) commands.RoomWriter { return s.RoomWriter },
	),
)

func NewStores(lc fx.Lifecycle, cfg config.Config) (*Stores, error) {
	switch cfg.DB.Driver {
	case "memory":
		ledger := memory.NewReservationLedger()
		rooms := memory.NewRoomRepository()
		return &Stores{
			ReservationWriter: ledger,
			ReservationReader: ledger,
			ForecastRepo:      memory.NewForecastRepository(),
			RoomReader:        rooms,
			RoomWriter:        rooms,
		}, nil

	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}

		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := db.Migrate(migrateCtx, pool); err != nil {
			cleanup()
			return nil, errs.Wrap(err, "failed to run migrations")
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})

		reservations := repository.NewReservationRepository(pool)
		rooms := repository.NewRoomRepository(pool)
		return &Stores{
			ReservationWriter: reservations,
			ReservationReader: reservations,
			ForecastRepo:      repository.NewForecastRepository(pool),
			RoomReader:        rooms,
			RoomWriter:        rooms,
		}, nil

	default:
		return nil, errs.New("unknown DB driver: " + cfg.DB.Driver)
	}
}
