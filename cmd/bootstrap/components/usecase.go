package components

import (
	"time"

	"roombooking/internal/domain/forecast"
	"roombooking/internal/domain/pricing"
	"roombooking/internal/infra/catalog"
	"roombooking/internal/infra/weatherprov"
	"roombooking/internal/pkg/clock"
	"roombooking/internal/pkg/config"
	"roombooking/internal/pkg/errs"
	"roombooking/internal/usecase/commands"
	"roombooking/internal/usecase/queries"
	"roombooking/internal/usecase/shared"
	"roombooking/internal/usecase/weather"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingEngine,
	NewForecastProvider,
	NewRoomCatalog,
	NewForecastStore,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewRoomCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)

func NewPricingEngine(cfg config.Config) (*pricing.Engine, error) {
	return pricing.NewEngine(cfg.Pricing.IdealTempC, cfg.Pricing.TierMaxDiffs, cfg.Pricing.TierPcts)
}

func NewForecastProvider(cfg config.Config) (forecast.Provider, error) {
	return weatherprov.NewSimulatedProvider(cfg.Forecast, time.Now().UnixNano())
}

func NewForecastStore(
	repo weather.Repository,
	provider forecast.Provider,
	engine *pricing.Engine,
	clk clock.Clock,
	cfg config.Config,
) *weather.Store {
	return weather.NewStore(repo, provider, engine, clk, cfg.Forecast.CacheTTL)
}

func NewRoomCatalog(cfg config.Config, reader queries.RoomReader) (shared.RoomCatalog, error) {
	switch cfg.Catalog.Mode {
	case "local":
		return catalog.NewLocalCatalog(reader), nil
	case "http":
		return catalog.NewHTTPCatalog(cfg.Catalog), nil
	default:
		return nil, errs.New("unknown catalog mode: " + cfg.Catalog.Mode)
	}
}
