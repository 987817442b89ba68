package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/infra/kv"

	"github.com/google/uuid"
)

// BookingRepository persists completed bookings at booking_<reference>.
// The per-guest listing is a prefix scan; at boutique-hotel scale a secondary
// index would be overkill.
type BookingRepository struct {
	store kv.Store
}

func NewBookingRepository(store kv.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Completed) error {
	value, err := json.Marshal(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}
	if err := r.store.Set(ctx, bookingKey(b.Reference), value); err != nil {
		return infra.WrapRepoErr("failed to store booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Completed, error) {
	value, err := r.store.Get(ctx, bookingKey(reference))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return decodeBooking(value)
}

func (r *BookingRepository) FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*booking.Completed, error) {
	items, err := r.store.ListPrefix(ctx, bookingKeyPrefix)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}

	result := make([]*booking.Completed, 0, len(items))
	for _, value := range items {
		b, err := decodeBooking(value)
		if err != nil {
			return nil, err
		}
		if b.GuestID == guestID {
			result = append(result, b)
		}
	}

	// Newest first for the dashboard
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}

func decodeBooking(value []byte) (*booking.Completed, error) {
	var b booking.Completed
	if err := json.Unmarshal(value, &b); err != nil {
		return nil, infra.WrapRepoErr("corrupt booking record", err, infra.KindCorruptValue)
	}
	return &b, nil
}
