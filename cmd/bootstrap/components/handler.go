package components

import (
	"go.uber.org/fx"

	"lumiere-guest-api/internal/handler"
	"lumiere-guest-api/internal/handler/api"
	"lumiere-guest-api/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewPreCheckInHandler,
		middleware.NewAuthMiddleware,
		middleware.NewPreCheckInMiddleware,
		func(
			auth *api.AuthHandler,
			room *api.RoomHandler,
			booking *api.BookingHandler,
			preCheckIn *api.PreCheckInHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:       auth,
				Room:       room,
				Booking:    booking,
				PreCheckIn: preCheckIn,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
