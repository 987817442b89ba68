package commands

import (
	"context"

	"github.com/google/uuid"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/domain/precheckin"
	"lumiere-guest-api/internal/domain/room"
	"lumiere-guest-api/internal/domain/user"
	"lumiere-guest-api/internal/pkg/errs"
)

// Write-side ports. Implemented by internal/infra.

type GuestRepository interface {
	Create(ctx context.Context, g *user.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.Guest, error)
	FindByEmail(ctx context.Context, email string) (*user.Guest, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, g *user.Guest) error
}

type DraftRepository interface {
	Find(ctx context.Context, guestID uuid.UUID) (*booking.Draft, error)
	Save(ctx context.Context, guestID uuid.UUID, d *booking.Draft) error
	Delete(ctx context.Context, guestID uuid.UUID) error
}

type BookingRepository interface {
	Save(ctx context.Context, b *booking.Completed) error
	FindByReference(ctx context.Context, reference string) (*booking.Completed, error)
}

type PreCheckInRepository interface {
	Find(ctx context.Context, bookingID string) (*precheckin.Draft, error)
	Save(ctx context.Context, d *precheckin.Draft) error
	FindSession(ctx context.Context, bookingID string) (*precheckin.Session, error)
	SaveSession(ctx context.Context, s *precheckin.Session) error
}

type RoomFinder interface {
	FindByID(ctx context.Context, id string) (*room.Room, error)
}

// CardInput carries raw card details to the gateway. Never persisted.
type CardInput struct {
	Number   string
	Holder   string
	ExpMonth int
	ExpYear  int
	CVC      string
}

// ErrChargeDeclined is the gateway's refusal; implementations return errors
// matching it via errors.Is.
var ErrChargeDeclined = errs.New("charge declined by issuing bank")

type PaymentGateway interface {
	Charge(ctx context.Context, amountCents int64, card CardInput) (booking.CardInfo, error)
}
