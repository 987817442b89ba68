package precheckin

import (
	"time"

	"github.com/google/uuid"
)

// Session is the guest-access grant persisted at
// preCheckInSession_<bookingID>. It lets a guest open the wizard from an
// emailed link without a full account login.
type Session struct {
	BookingID string    `json:"booking_id"`
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSession(bookingID, email string, ttl time.Duration, now time.Time) *Session {
	return &Session{
		BookingID: bookingID,
		Token:     uuid.NewString(),
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
