package usecase

import (
	"context"

	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/pkg/errs"
	"lumiere-guest-api/internal/usecase/commands"
)

// SessionValidator checks pre-check-in session tokens for middleware. The
// wizard is reachable without a guest account, so this is its whole auth.
type SessionValidator interface {
	Validate(ctx context.Context, bookingID, token string) error
}

type sessionValidatorImpl struct {
	drafts commands.PreCheckInRepository
	clock  clock.Clock
}

func NewSessionValidator(drafts commands.PreCheckInRepository, clk clock.Clock) SessionValidator {
	return &sessionValidatorImpl{
		drafts: drafts,
		clock:  clk,
	}
}

func (v *sessionValidatorImpl) Validate(ctx context.Context, bookingID, token string) error {
	session, err := v.drafts.FindSession(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return commands.ErrSessionNotFound
		}
		return errs.Wrap(err, "failed to load session")
	}
	if session.Token != token {
		return commands.ErrSessionNotFound
	}
	if session.Expired(v.clock.Now()) {
		return commands.ErrSessionExpired
	}
	return nil
}
