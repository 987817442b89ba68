package queries

import (
	"context"

	"github.com/google/uuid"

	"lumiere-guest-api/internal/domain/user"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/errs"
)

var ErrGuestNotFound = errs.New("guest not found")

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.Guest, error)
}

type GuestQueries struct {
	guests GuestReadStore
}

func NewGuestQueries(guests GuestReadStore) *GuestQueries {
	return &GuestQueries{guests: guests}
}

func (q *GuestQueries) GetCurrent(ctx context.Context, id uuid.UUID) (*GuestView, error) {
	g, err := q.guests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGuestNotFound)
		}
		return nil, errs.Wrap(err, "failed to get guest")
	}
	return &GuestView{
		ID:        g.ID,
		Email:     string(g.Email),
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Role:      string(g.Role),
		IsActive:  g.IsActive,
	}, nil
}
