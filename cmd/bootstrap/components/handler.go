package components

import (
	"roombooking/internal/handler"
	"roombooking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewWeatherHandler,
	),
	fx.Invoke(handler.NewRouter),
)
