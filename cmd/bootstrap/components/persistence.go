package components

import (
	"go.uber.org/fx"

	"lumiere-guest-api/internal/infra/catalog"
	"lumiere-guest-api/internal/infra/payment"
	repo_impl "lumiere-guest-api/internal/infra/repository"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Guest
		fx.Annotate(
			repo_impl.NewGuestRepository,
			fx.As(new(commands.GuestRepository)),
			fx.As(new(queries.GuestReadStore)),
		),
		// Booking draft
		fx.Annotate(
			repo_impl.NewDraftRepository,
			fx.As(new(commands.DraftRepository)),
			fx.As(new(queries.DraftReadStore)),
		),
		// Confirmed booking
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		// Pre-check-in wizard
		fx.Annotate(
			repo_impl.NewPreCheckInRepository,
			fx.As(new(commands.PreCheckInRepository)),
			fx.As(new(queries.PreCheckInReadStore)),
		),
		// Room catalog
		fx.Annotate(
			catalog.NewStaticRoomStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(commands.RoomFinder)),
		),
		// Payment gateway
		fx.Annotate(
			payment.NewSimulatedGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
