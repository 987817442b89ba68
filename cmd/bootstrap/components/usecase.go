package components

import (
	"go.uber.org/fx"

	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/usecase"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPreCheckInCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGuestQueries,
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewPreCheckInQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewSessionValidator,
	),
)
