package booking

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable = errors.New("booking cannot be cancelled in its current status")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// referencePrefix GLM is the Grand Lumière brand code carried on every
// confirmation number.
const referencePrefix = "GLM"

// NewReference formats a confirmation number as GLM-<year>-<5-digit
// zero-padded random>, e.g. GLM-2026-04821.
func NewReference(rng *rand.Rand, year int) string {
	return fmt.Sprintf("%s-%d-%05d", referencePrefix, year, rng.Intn(100000))
}

// CardInfo is the masked payment record kept on a completed booking. The full
// card number never leaves the submission path.
type CardInfo struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

func MaskCard(number string) CardInfo {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}

	brand := "card"
	switch {
	case strings.HasPrefix(digits, "4"):
		brand = "visa"
	case strings.HasPrefix(digits, "5"):
		brand = "mastercard"
	case strings.HasPrefix(digits, "3"):
		brand = "amex"
	case strings.HasPrefix(digits, "6"):
		brand = "discover"
	}

	return CardInfo{Brand: brand, Last4: last4}
}

// Completed is the immutable record created on successful submission. Only
// status transitions performed by the dashboard may touch it afterwards.
type Completed struct {
	Reference     string          `json:"reference"`
	GuestID       uuid.UUID       `json:"guest_id"`
	Room          RoomRef         `json:"room"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	Guests        int             `json:"guests"`
	Requests      SpecialRequests `json:"requests"`
	Contact       GuestContact    `json:"contact"`
	TermsAccepted bool            `json:"terms_accepted"`
	Pricing       Breakdown       `json:"pricing"`
	Payment       CardInfo        `json:"payment"`
	Status        Status          `json:"status"`
	SubmittedAt   time.Time       `json:"submitted_at"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
}

func NewCompleted(d *Draft, guestID uuid.UUID, reference string, payment CardInfo, now time.Time) *Completed {
	contact := GuestContact{}
	if d.Contact != nil {
		contact = *d.Contact
	}

	return &Completed{
		Reference:     reference,
		GuestID:       guestID,
		Room:          d.Room,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Guests:        d.Guests,
		Requests:      d.Requests,
		Contact:       contact,
		TermsAccepted: d.TermsAccepted,
		Pricing:       d.Pricing,
		Payment:       payment,
		Status:        StatusConfirmed,
		SubmittedAt:   now,
	}
}

// Cancel is the only mutation the dashboard performs.
func (c *Completed) Cancel(now time.Time) error {
	if c.Status != StatusConfirmed {
		return ErrNotCancellable
	}
	c.Status = StatusCancelled
	c.CancelledAt = &now
	return nil
}
