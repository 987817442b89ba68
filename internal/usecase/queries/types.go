package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	NightlyRateCents int64    `json:"nightly_rate_cents"`
	MaxGuests        int      `json:"max_guests"`
	SizeSqm          int      `json:"size_sqm"`
	Amenities        []string `json:"amenities"`
}

type PricingView struct {
	BasePriceCents   int64 `json:"base_price_cents"`
	Nights           int   `json:"nights"`
	SubtotalCents    int64 `json:"subtotal_cents"`
	CleaningFeeCents int64 `json:"cleaning_fee_cents"`
	ServiceFeeCents  int64 `json:"service_fee_cents"`
	TaxCents         int64 `json:"tax_cents"`
	TotalCents       int64 `json:"total_cents"`
}

type DraftView struct {
	RoomID        string      `json:"room_id"`
	RoomName      string      `json:"room_name"`
	RoomImage     string      `json:"room_image"`
	CheckIn       time.Time   `json:"check_in"`
	CheckOut      time.Time   `json:"check_out"`
	Guests        int         `json:"guests"`
	Requests      any         `json:"requests"`
	Contact       any         `json:"contact,omitempty"`
	TermsAccepted bool        `json:"terms_accepted"`
	Pricing       PricingView `json:"pricing"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type BookingView struct {
	Reference    string      `json:"reference"`
	GuestID      uuid.UUID   `json:"guest_id"`
	RoomID       string      `json:"room_id"`
	RoomName     string      `json:"room_name"`
	RoomImage    string      `json:"room_image"`
	CheckIn      time.Time   `json:"check_in"`
	CheckOut     time.Time   `json:"check_out"`
	Guests       int         `json:"guests"`
	Pricing      PricingView `json:"pricing"`
	PaymentBrand string      `json:"payment_brand"`
	PaymentLast4 string      `json:"payment_last4"`
	Status       string      `json:"status"`
	SubmittedAt  time.Time   `json:"submitted_at"`
	CancelledAt  *time.Time  `json:"cancelled_at,omitempty"`
}

type BookingListItem struct {
	Reference   string    `json:"reference"`
	RoomName    string    `json:"room_name"`
	RoomImage   string    `json:"room_image"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	TotalCents  int64     `json:"total_cents"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type StepProgress struct {
	Step     int    `json:"step"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type PreCheckInView struct {
	BookingID        string         `json:"booking_id"`
	Step             int            `json:"step"`
	StepName         string         `json:"step_name"`
	TotalSteps       int            `json:"total_steps"`
	Completed        bool           `json:"completed"`
	GuestInfo        any            `json:"guest_info,omitempty"`
	IDVerification   any            `json:"id_verification,omitempty"`
	RoomSelection    any            `json:"room_selection,omitempty"`
	SpecialRequests  any            `json:"special_requests,omitempty"`
	TermsAccepted    bool           `json:"terms_accepted"`
	DigitalKeyIssued bool           `json:"digital_key_issued"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	Progress         []StepProgress `json:"progress"`
}

type GuestView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}
