//go:build unit || e2e

package builder

import (
	"time"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/domain/room"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
)

// DraftBuilder assembles booking drafts around a three night deluxe stay.
type DraftBuilder struct {
	RoomID           string
	RoomName         string
	Category         room.Category
	NightlyRateCents int64
	MaxGuests        int
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	CleaningFeeCents int64
}

func NewDraftBuilder() *DraftBuilder {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	return &DraftBuilder{
		RoomID:           "deluxe-terrace",
		RoomName:         "Deluxe Terrace Room",
		Category:         room.CategoryDeluxe,
		NightlyRateCents: 24500,
		MaxGuests:        3,
		CheckIn:          checkIn,
		CheckOut:         checkIn.AddDate(0, 0, 3),
		Guests:           2,
		CleaningFeeCents: 5000,
	}
}

func (b *DraftBuilder) WithStay(checkIn, checkOut time.Time) *DraftBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *DraftBuilder) WithGuests(guests int) *DraftBuilder {
	b.Guests = guests
	return b
}

func (b *DraftBuilder) WithNightlyRate(cents int64) *DraftBuilder {
	b.NightlyRateCents = cents
	return b
}

func (b *DraftBuilder) RoomRef() booking.RoomRef {
	return booking.RoomRef{
		ID:               b.RoomID,
		Name:             b.RoomName,
		Image:            "/images/rooms/" + b.RoomID + ".jpg",
		Category:         b.Category,
		NightlyRateCents: b.NightlyRateCents,
		MaxGuests:        b.MaxGuests,
	}
}

func (b *DraftBuilder) BuildDomain() (*booking.Draft, error) {
	return booking.NewDraft(b.RoomRef(), b.CheckIn, b.CheckOut, b.Guests, b.CleaningFeeCents, time.Now())
}

func (b *DraftBuilder) BuildSetDTO() reqdto.SetDraftRequest {
	return reqdto.SetDraftRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Guests:   b.Guests,
	}
}

func (b *DraftBuilder) BuildSubmitDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		Card: reqdto.CardRequest{
			Number:   "4242424242424242",
			Holder:   "MARIE DUBOIS",
			ExpMonth: 12,
			ExpYear:  2030,
			CVC:      "123",
		},
	}
}
