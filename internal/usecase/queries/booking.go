package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/errs"
)

var (
	ErrDraftNotFound   = errs.New("booking draft not found")
	ErrBookingNotFound = errs.New("booking not found")
)

type DraftReadStore interface {
	Find(ctx context.Context, guestID uuid.UUID) (*booking.Draft, error)
}

type BookingReadStore interface {
	FindByReference(ctx context.Context, reference string) (*booking.Completed, error)
	FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*booking.Completed, error)
}

type BookingQueries struct {
	drafts   DraftReadStore
	bookings BookingReadStore
}

func NewBookingQueries(drafts DraftReadStore, bookings BookingReadStore) *BookingQueries {
	return &BookingQueries{drafts: drafts, bookings: bookings}
}

func (q *BookingQueries) GetDraft(ctx context.Context, guestID uuid.UUID) (*DraftView, error) {
	d, err := q.drafts.Find(ctx, guestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDraftNotFound)
		}
		return nil, errs.Wrap(err, "failed to get booking draft")
	}

	view := DraftView{
		RoomID:        d.Room.ID,
		RoomName:      d.Room.Name,
		RoomImage:     d.Room.Image,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Guests:        d.Guests,
		Requests:      d.Requests,
		TermsAccepted: d.TermsAccepted,
		Pricing:       toPricingView(d.Pricing),
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Contact != nil {
		view.Contact = d.Contact
	}
	return &view, nil
}

func (q *BookingQueries) GetByReference(ctx context.Context, reference string) (*BookingView, error) {
	b, err := q.bookings.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	view := toBookingView(b)
	return &view, nil
}

func (q *BookingQueries) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]BookingListItem, error) {
	all, err := q.bookings.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	items := make([]BookingListItem, 0, len(all))
	for _, b := range all {
		items = append(items, BookingListItem{
			Reference:   b.Reference,
			RoomName:    b.Room.Name,
			RoomImage:   b.Room.Image,
			CheckIn:     b.CheckIn,
			CheckOut:    b.CheckOut,
			TotalCents:  b.Pricing.TotalCents,
			Status:      string(b.Status),
			SubmittedAt: b.SubmittedAt,
		})
	}
	return items, nil
}

func toBookingView(b *booking.Completed) BookingView {
	return BookingView{
		Reference:    b.Reference,
		GuestID:      b.GuestID,
		RoomID:       b.Room.ID,
		RoomName:     b.Room.Name,
		RoomImage:    b.Room.Image,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Guests:       b.Guests,
		Pricing:      toPricingView(b.Pricing),
		PaymentBrand: b.Payment.Brand,
		PaymentLast4: b.Payment.Last4,
		Status:       string(b.Status),
		SubmittedAt:  b.SubmittedAt,
		CancelledAt:  b.CancelledAt,
	}
}

// Breakdown and PricingView share field names, so copier handles the mapping.
func toPricingView(p booking.Breakdown) PricingView {
	var view PricingView
	_ = copier.Copy(&view, &p)
	return view
}
