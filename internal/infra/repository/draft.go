package repository

import (
	"context"
	"encoding/json"
	"errors"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/infra/kv"

	"github.com/google/uuid"
)

// DraftRepository persists the single in-progress booking per guest at
// bookingData_<guestID>. Every mutation writes through immediately.
type DraftRepository struct {
	store kv.Store
}

func NewDraftRepository(store kv.Store) *DraftRepository {
	return &DraftRepository{store: store}
}

func (r *DraftRepository) Find(ctx context.Context, guestID uuid.UUID) (*booking.Draft, error) {
	value, err := r.store.Get(ctx, draftKey(guestID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, infra.WrapRepoErr("booking draft not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking draft", err)
	}

	var d booking.Draft
	if err := json.Unmarshal(value, &d); err != nil {
		return nil, infra.WrapRepoErr("corrupt booking draft", err, infra.KindCorruptValue)
	}
	return &d, nil
}

func (r *DraftRepository) Save(ctx context.Context, guestID uuid.UUID, d *booking.Draft) error {
	value, err := json.Marshal(d)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking draft", err)
	}
	if err := r.store.Set(ctx, draftKey(guestID), value); err != nil {
		return infra.WrapRepoErr("failed to store booking draft", err)
	}
	return nil
}

func (r *DraftRepository) Delete(ctx context.Context, guestID uuid.UUID) error {
	if err := r.store.Delete(ctx, draftKey(guestID)); err != nil {
		return infra.WrapRepoErr("failed to delete booking draft", err)
	}
	return nil
}
