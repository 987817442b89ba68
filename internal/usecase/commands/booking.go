package commands

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"lumiere-guest-api/internal/domain/booking"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/errs"
	"lumiere-guest-api/internal/pkg/metrics"
)

var (
	ErrValidation            = errs.New("validation failed")
	ErrNoDraft               = errs.New("no booking draft")
	ErrRoomNotFound          = errs.New("room not found")
	ErrPaymentDeclined       = errs.New("payment declined by your bank")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrBookingNotCancellable = errs.New("booking cannot be cancelled")
)

type SubmitResult struct {
	Reference string
	Booking   *booking.Completed
}

type BookingCommands interface {
	SetDraft(ctx context.Context, guestID uuid.UUID, req reqdto.SetDraftRequest) (*booking.Draft, error)
	// UpdateDraft is a no-op and returns (nil, nil) when no draft exists.
	UpdateDraft(ctx context.Context, guestID uuid.UUID, req reqdto.UpdateDraftRequest) (*booking.Draft, error)
	ClearDraft(ctx context.Context, guestID uuid.UUID) error
	Submit(ctx context.Context, guestID uuid.UUID, req reqdto.SubmitBookingRequest) (*SubmitResult, error)
	Cancel(ctx context.Context, guestID uuid.UUID, reference string) (*booking.Completed, error)
}

type bookingCommandsImpl struct {
	drafts   DraftRepository
	bookings BookingRepository
	rooms    RoomFinder
	gateway  PaymentGateway
	cfg      config.BookingConfig
	metrics  *metrics.Metrics
	clock    clock.Clock

	// Collapses concurrent submits from double-clicked pay buttons into one
	// charge per guest.
	submitGroup singleflight.Group

	mu  sync.Mutex
	rng *rand.Rand
}

func NewBookingCommands(
	drafts DraftRepository,
	bookings BookingRepository,
	rooms RoomFinder,
	gateway PaymentGateway,
	cfg config.BookingConfig,
	m *metrics.Metrics,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		drafts:   drafts,
		bookings: bookings,
		rooms:    rooms,
		gateway:  gateway,
		cfg:      cfg,
		metrics:  m,
		clock:    clk,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *bookingCommandsImpl) SetDraft(ctx context.Context, guestID uuid.UUID, req reqdto.SetDraftRequest) (*booking.Draft, error) {
	r, err := b.rooms.FindByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to load room")
	}

	roomRef := booking.RoomRef{
		ID:               r.ID,
		Name:             r.Name,
		Image:            r.Image,
		Category:         r.Category,
		NightlyRateCents: r.NightlyRateCents,
		MaxGuests:        r.MaxGuests,
	}

	draft, err := booking.NewDraft(roomRef, req.CheckIn, req.CheckOut, req.Guests, b.cfg.CleaningFeeCents, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := b.drafts.Save(ctx, guestID, draft); err != nil {
		return nil, errs.Wrap(err, "failed to save draft")
	}
	return draft, nil
}

func (b *bookingCommandsImpl) UpdateDraft(ctx context.Context, guestID uuid.UUID, req reqdto.UpdateDraftRequest) (*booking.Draft, error) {
	draft, err := b.drafts.Find(ctx, guestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Nothing to merge into. Mirrors the storefront, which silently
			// ignores edits after the draft is gone.
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}

	patch := booking.DraftPatch{
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Guests:        req.Guests,
		Requests:      req.Requests,
		TermsAccepted: req.TermsAccepted,
	}
	if req.Contact != nil {
		patch.Contact = req.Contact.ToDomain()
	}
	if req.RoomID != nil {
		r, err := b.rooms.FindByID(ctx, *req.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrRoomNotFound)
			}
			return nil, errs.Wrap(err, "failed to load room")
		}
		patch.Room = &booking.RoomRef{
			ID:               r.ID,
			Name:             r.Name,
			Image:            r.Image,
			Category:         r.Category,
			NightlyRateCents: r.NightlyRateCents,
			MaxGuests:        r.MaxGuests,
		}
	}

	if err := draft.Apply(patch, b.cfg.CleaningFeeCents, b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := b.drafts.Save(ctx, guestID, draft); err != nil {
		return nil, errs.Wrap(err, "failed to save draft")
	}
	return draft, nil
}

func (b *bookingCommandsImpl) ClearDraft(ctx context.Context, guestID uuid.UUID) error {
	if err := b.drafts.Delete(ctx, guestID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Wrap(err, "failed to clear draft")
	}
	return nil
}

func (b *bookingCommandsImpl) Submit(ctx context.Context, guestID uuid.UUID, req reqdto.SubmitBookingRequest) (*SubmitResult, error) {
	result, err, _ := b.submitGroup.Do(guestID.String(), func() (any, error) {
		return b.submit(ctx, guestID, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*SubmitResult), nil
}

func (b *bookingCommandsImpl) submit(ctx context.Context, guestID uuid.UUID, req reqdto.SubmitBookingRequest) (*SubmitResult, error) {
	draft, err := b.drafts.Find(ctx, guestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoDraft)
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}

	card := CardInput{
		Number:   req.Card.Number,
		Holder:   req.Card.Holder,
		ExpMonth: req.Card.ExpMonth,
		ExpYear:  req.Card.ExpYear,
		CVC:      req.Card.CVC,
	}

	chargeCtx, cancel := context.WithTimeout(ctx, b.cfg.PaymentTimeout)
	defer cancel()

	cardInfo, err := b.gateway.Charge(chargeCtx, draft.Pricing.TotalCents, card)
	if err != nil {
		if errors.Is(err, ErrChargeDeclined) {
			b.metrics.PaymentsDeclined.Inc()
			return nil, errs.Mark(err, ErrPaymentDeclined)
		}
		return nil, errs.Wrap(err, "payment charge failed")
	}

	now := b.clock.Now()
	reference := b.newReference(ctx, now.Year())
	completed := booking.NewCompleted(draft, guestID, reference, cardInfo, now)

	if err := b.bookings.Save(ctx, completed); err != nil {
		return nil, errs.Wrap(err, "failed to save booking")
	}
	b.metrics.BookingsSubmitted.Inc()

	// The draft intentionally survives submission; the confirmation screen
	// still renders from it and a fresh SetDraft replaces it.
	return &SubmitResult{Reference: reference, Booking: completed}, nil
}

// newReference draws until the reference is unused. Collisions are rare with
// a five digit suffix, so a handful of attempts is plenty.
func (b *bookingCommandsImpl) newReference(ctx context.Context, year int) string {
	var ref string
	for range 5 {
		b.mu.Lock()
		ref = booking.NewReference(b.rng, year)
		b.mu.Unlock()

		if _, err := b.bookings.FindByReference(ctx, ref); infra.IsKind(err, infra.KindNotFound) {
			return ref
		}
	}
	return ref
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, guestID uuid.UUID, reference string) (*booking.Completed, error) {
	found, err := b.bookings.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	if found.GuestID != guestID {
		return nil, ErrBookingNotFound
	}

	if err := found.Cancel(b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrBookingNotCancellable)
	}

	if err := b.bookings.Save(ctx, found); err != nil {
		return nil, errs.Wrap(err, "failed to save booking")
	}
	return found, nil
}
