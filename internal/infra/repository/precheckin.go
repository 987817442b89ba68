package repository

import (
	"context"
	"encoding/json"
	"errors"

	"lumiere-guest-api/internal/domain/precheckin"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/infra/kv"
)

// PreCheckInRepository persists wizard drafts at preCheckIn_<bookingID> and
// guest-access sessions at preCheckInSession_<bookingID>.
type PreCheckInRepository struct {
	store kv.Store
}

func NewPreCheckInRepository(store kv.Store) *PreCheckInRepository {
	return &PreCheckInRepository{store: store}
}

func (r *PreCheckInRepository) Find(ctx context.Context, bookingID string) (*precheckin.Draft, error) {
	value, err := r.store.Get(ctx, preCheckInKey(bookingID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, infra.WrapRepoErr("pre-check-in draft not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pre-check-in draft", err)
	}

	var d precheckin.Draft
	if err := json.Unmarshal(value, &d); err != nil {
		return nil, infra.WrapRepoErr("corrupt pre-check-in draft", err, infra.KindCorruptValue)
	}
	return &d, nil
}

func (r *PreCheckInRepository) Save(ctx context.Context, d *precheckin.Draft) error {
	value, err := json.Marshal(d)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pre-check-in draft", err)
	}
	if err := r.store.Set(ctx, preCheckInKey(d.BookingID), value); err != nil {
		return infra.WrapRepoErr("failed to store pre-check-in draft", err)
	}
	return nil
}

func (r *PreCheckInRepository) FindSession(ctx context.Context, bookingID string) (*precheckin.Session, error) {
	value, err := r.store.Get(ctx, sessionKey(bookingID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, infra.WrapRepoErr("pre-check-in session not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pre-check-in session", err)
	}

	var s precheckin.Session
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, infra.WrapRepoErr("corrupt pre-check-in session", err, infra.KindCorruptValue)
	}
	return &s, nil
}

func (r *PreCheckInRepository) SaveSession(ctx context.Context, s *precheckin.Session) error {
	value, err := json.Marshal(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pre-check-in session", err)
	}
	if err := r.store.Set(ctx, sessionKey(s.BookingID), value); err != nil {
		return infra.WrapRepoErr("failed to store pre-check-in session", err)
	}
	return nil
}
