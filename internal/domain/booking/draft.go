package booking

import (
	"errors"
	"time"

	"lumiere-guest-api/internal/domain/room"
)

var (
	ErrInvalidStay       = errors.New("check-out must be after check-in")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrRoomOverCapacity  = errors.New("guest count exceeds room capacity")
)

// RoomRef is the slice of the catalog entry a draft carries around. Enough to
// render the review screen and to price the stay without re-reading the
// catalog.
type RoomRef struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Image            string        `json:"image"`
	Category         room.Category `json:"category"`
	NightlyRateCents int64         `json:"nightly_rate_cents"`
	MaxGuests        int           `json:"max_guests"`
}

// SpecialRequests is the fixed flag set from the booking review step plus the
// free-text notes field.
type SpecialRequests struct {
	EarlyCheckIn       bool   `json:"early_check_in"`
	LateCheckOut       bool   `json:"late_check_out"`
	AirportTransfer    bool   `json:"airport_transfer"`
	DailyHousekeeping  bool   `json:"daily_housekeeping"`
	ChampagneOnArrival bool   `json:"champagne_on_arrival"`
	Notes              string `json:"notes,omitempty"`
}

type SpecialRequestsPatch struct {
	EarlyCheckIn       *bool   `json:"early_check_in,omitempty"`
	LateCheckOut       *bool   `json:"late_check_out,omitempty"`
	AirportTransfer    *bool   `json:"airport_transfer,omitempty"`
	DailyHousekeeping  *bool   `json:"daily_housekeeping,omitempty"`
	ChampagneOnArrival *bool   `json:"champagne_on_arrival,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

type GuestContact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Draft is the single in-progress booking for a guest. It has no identity of
// its own; identity arrives with submission. The record is marshalled to JSON
// by the draft repository, hence the exported fields.
type Draft struct {
	Room          RoomRef         `json:"room"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	Guests        int             `json:"guests"`
	Requests      SpecialRequests `json:"requests"`
	Contact       *GuestContact   `json:"contact,omitempty"`
	TermsAccepted bool            `json:"terms_accepted"`
	Pricing       Breakdown       `json:"pricing"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewDraft(roomRef RoomRef, checkIn, checkOut time.Time, guests int, cleaningFeeCents int64, now time.Time) (*Draft, error) {
	if err := validateStay(checkIn, checkOut); err != nil {
		return nil, err
	}
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if roomRef.MaxGuests > 0 && guests > roomRef.MaxGuests {
		return nil, ErrRoomOverCapacity
	}

	d := &Draft{
		Room:      roomRef,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.reprice(cleaningFeeCents)
	return d, nil
}

// DraftPatch is a shallow merge: nil fields leave the draft untouched.
type DraftPatch struct {
	Room          *RoomRef
	CheckIn       *time.Time
	CheckOut      *time.Time
	Guests        *int
	Requests      *SpecialRequestsPatch
	Contact       *GuestContact
	TermsAccepted *bool
}

// Apply merges the patch into the draft and recomputes pricing. The breakdown
// is always rederived so it can never drift from room and dates.
func (d *Draft) Apply(p DraftPatch, cleaningFeeCents int64, now time.Time) error {
	checkIn := d.CheckIn
	checkOut := d.CheckOut
	if p.CheckIn != nil {
		checkIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		checkOut = *p.CheckOut
	}
	if err := validateStay(checkIn, checkOut); err != nil {
		return err
	}

	guests := d.Guests
	if p.Guests != nil {
		guests = *p.Guests
	}
	if guests < 1 {
		return ErrInvalidGuestCount
	}

	room := d.Room
	if p.Room != nil {
		room = *p.Room
	}
	if room.MaxGuests > 0 && guests > room.MaxGuests {
		return ErrRoomOverCapacity
	}

	d.Room = room
	d.CheckIn = checkIn
	d.CheckOut = checkOut
	d.Guests = guests

	if p.Requests != nil {
		d.Requests.merge(p.Requests)
	}
	if p.Contact != nil {
		d.Contact = p.Contact
	}
	if p.TermsAccepted != nil {
		d.TermsAccepted = *p.TermsAccepted
	}

	d.reprice(cleaningFeeCents)
	d.UpdatedAt = now
	return nil
}

func (d *Draft) Nights() int {
	return NightsBetween(d.CheckIn, d.CheckOut)
}

func (d *Draft) reprice(cleaningFeeCents int64) {
	d.Pricing = CalculatePricing(d.Room.NightlyRateCents, d.Nights(), cleaningFeeCents)
}

func (r *SpecialRequests) merge(p *SpecialRequestsPatch) {
	if p.EarlyCheckIn != nil {
		r.EarlyCheckIn = *p.EarlyCheckIn
	}
	if p.LateCheckOut != nil {
		r.LateCheckOut = *p.LateCheckOut
	}
	if p.AirportTransfer != nil {
		r.AirportTransfer = *p.AirportTransfer
	}
	if p.DailyHousekeeping != nil {
		r.DailyHousekeeping = *p.DailyHousekeeping
	}
	if p.ChampagneOnArrival != nil {
		r.ChampagneOnArrival = *p.ChampagneOnArrival
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

func validateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return ErrInvalidStay
	}
	return nil
}
