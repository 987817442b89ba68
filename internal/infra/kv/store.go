// Package kv is the durable JSON key-value layer every repository builds on.
// The key layout is the persistence contract of the service:
//
//	guest_<guestID>                 account record
//	guestEmail_<email>              email → guest ID index
//	bookingData_<guestID>           in-progress booking draft
//	booking_<reference>             completed booking
//	preCheckIn_<bookingID>          pre-check-in wizard draft
//	preCheckInSession_<bookingID>   guest-access session
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Store is the driver port. Values are opaque JSON documents; all writes are
// full-value replacements (single-writer semantics per key, no cross-key
// transactions).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// ListPrefix returns all key/value pairs whose key starts with prefix.
	ListPrefix(ctx context.Context, prefix string) (map[string][]byte, error)
	Close() error
}
