package repository

import "github.com/google/uuid"

// Key builders for the kv layout. Keep these in one place: the layout is the
// persistence contract and grep-ability matters more than locality.

const (
	guestKeyPrefix      = "guest_"
	guestEmailKeyPrefix = "guestEmail_"
	draftKeyPrefix      = "bookingData_"
	bookingKeyPrefix    = "booking_"
	preCheckInKeyPrefix = "preCheckIn_"
	sessionKeyPrefix    = "preCheckInSession_"
)

func guestKey(id uuid.UUID) string          { return guestKeyPrefix + id.String() }
func guestEmailKey(email string) string     { return guestEmailKeyPrefix + email }
func draftKey(guestID uuid.UUID) string     { return draftKeyPrefix + guestID.String() }
func bookingKey(reference string) string    { return bookingKeyPrefix + reference }
func preCheckInKey(bookingID string) string { return preCheckInKeyPrefix + bookingID }
func sessionKey(bookingID string) string    { return sessionKeyPrefix + bookingID }
