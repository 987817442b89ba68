package repository

import (
	"context"
	"encoding/json"
	"errors"

	"lumiere-guest-api/internal/domain/user"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/infra/kv"

	"github.com/google/uuid"
)

type GuestRepository struct {
	store kv.Store
}

func NewGuestRepository(store kv.Store) *GuestRepository {
	return &GuestRepository{store: store}
}

// emailIndex is the value stored under guestEmail_<email>.
type emailIndex struct {
	GuestID uuid.UUID `json:"guest_id"`
}

// Create persists the account record and the email index. Uniqueness is
// checked against the index first; the store has no native constraint.
func (r *GuestRepository) Create(ctx context.Context, g *user.Guest) error {
	_, err := r.store.Get(ctx, guestEmailKey(g.Email))
	if err == nil {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return infra.WrapRepoErr("failed to check email index", err)
	}

	value, err := json.Marshal(g)
	if err != nil {
		return infra.WrapRepoErr("failed to encode guest", err)
	}
	if err := r.store.Set(ctx, guestKey(g.ID), value); err != nil {
		return infra.WrapRepoErr("failed to store guest", err)
	}

	idx, err := json.Marshal(emailIndex{GuestID: g.ID})
	if err != nil {
		return infra.WrapRepoErr("failed to encode email index", err)
	}
	if err := r.store.Set(ctx, guestEmailKey(g.Email), idx); err != nil {
		return infra.WrapRepoErr("failed to store email index", err)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.Guest, error) {
	value, err := r.store.Get(ctx, guestKey(id))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load guest", err)
	}
	return decodeGuest(value)
}

func (r *GuestRepository) FindByEmail(ctx context.Context, email string) (*user.Guest, error) {
	value, err := r.store.Get(ctx, guestEmailKey(email))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load email index", err)
	}

	var idx emailIndex
	if err := json.Unmarshal(value, &idx); err != nil {
		return nil, infra.WrapRepoErr("corrupt email index", err, infra.KindCorruptValue)
	}
	return r.FindByID(ctx, idx.GuestID)
}

func (r *GuestRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, g *user.Guest) error {
	value, err := json.Marshal(g)
	if err != nil {
		return infra.WrapRepoErr("failed to encode guest", err)
	}
	if err := r.store.Set(ctx, guestKey(id), value); err != nil {
		return infra.WrapRepoErr("failed to store guest", err)
	}
	return nil
}

func decodeGuest(value []byte) (*user.Guest, error) {
	var g user.Guest
	if err := json.Unmarshal(value, &g); err != nil {
		return nil, infra.WrapRepoErr("corrupt guest record", err, infra.KindCorruptValue)
	}
	return &g, nil
}
