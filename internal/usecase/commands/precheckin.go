package commands

import (
	"context"
	"strings"

	"lumiere-guest-api/internal/domain/precheckin"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/errs"
	"lumiere-guest-api/internal/pkg/metrics"
)

var (
	ErrInvalidStep     = errs.New("invalid step")
	ErrSessionExpired  = errs.New("pre-check-in session expired")
	ErrSessionNotFound = errs.New("pre-check-in session not found")
	ErrEmailMismatch   = errs.New("email does not match booking")
)

type StartResult struct {
	Token string
	Draft *precheckin.Draft
}

type PreCheckInCommands interface {
	Start(ctx context.Context, req reqdto.StartPreCheckInRequest) (*StartResult, error)
	GoToStep(ctx context.Context, bookingID string, step int) (*precheckin.Draft, error)
	Next(ctx context.Context, bookingID string) (*precheckin.Draft, error)
	Previous(ctx context.Context, bookingID string) (*precheckin.Draft, error)
	UpdateGuestInfo(ctx context.Context, bookingID string, p precheckin.GuestInfoPatch) (*precheckin.Draft, error)
	UpdateIDVerification(ctx context.Context, bookingID string, p precheckin.IDVerificationPatch) (*precheckin.Draft, error)
	UpdateRoomSelection(ctx context.Context, bookingID string, sel precheckin.RoomSelection) (*precheckin.Draft, error)
	UpdateSpecialRequests(ctx context.Context, bookingID string, p precheckin.SpecialRequestsPatch) (*precheckin.Draft, error)
	Sign(ctx context.Context, bookingID string, signature string) (*precheckin.Draft, error)
	Complete(ctx context.Context, bookingID string) (*precheckin.Draft, error)
}

type preCheckInCommandsImpl struct {
	drafts   PreCheckInRepository
	bookings BookingRepository
	cfg      config.PreCheckInConfig
	metrics  *metrics.Metrics
	clock    clock.Clock
}

func NewPreCheckInCommands(
	drafts PreCheckInRepository,
	bookings BookingRepository,
	cfg config.PreCheckInConfig,
	m *metrics.Metrics,
	clk clock.Clock,
) PreCheckInCommands {
	return &preCheckInCommandsImpl{
		drafts:   drafts,
		bookings: bookings,
		cfg:      cfg,
		metrics:  m,
		clock:    clk,
	}
}

// Start verifies the booking and contact email, issues a session token and
// returns the wizard draft, creating it at the welcome step on first entry.
// Restarting reissues the token but keeps any saved progress.
func (p *preCheckInCommandsImpl) Start(ctx context.Context, req reqdto.StartPreCheckInRequest) (*StartResult, error) {
	found, err := p.bookings.FindByReference(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	if !strings.EqualFold(found.Contact.Email, req.Email) {
		return nil, ErrEmailMismatch
	}

	now := p.clock.Now()
	session := precheckin.NewSession(req.BookingID, found.Contact.Email, p.cfg.SessionTTL, now)
	if err := p.drafts.SaveSession(ctx, session); err != nil {
		return nil, errs.Wrap(err, "failed to save session")
	}

	draft, err := p.loadOrInit(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return &StartResult{Token: session.Token, Draft: draft}, nil
}

func (p *preCheckInCommandsImpl) GoToStep(ctx context.Context, bookingID string, step int) (*precheckin.Draft, error) {
	s := precheckin.Step(step)
	if !s.IsValid() {
		return nil, ErrInvalidStep
	}
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.GoToStep(s, p.clock.Now())
	})
}

// Next advances one step; landing on the final step finalizes the wizard so
// the guest never has to confirm twice.
func (p *preCheckInCommandsImpl) Next(ctx context.Context, bookingID string) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		wasCompleted := d.Completed
		d.Next(p.clock.Now())
		if d.Step.IsFinal() {
			d.Complete(p.clock.Now())
			if !wasCompleted && d.Completed {
				p.metrics.PreCheckInsCompleted.Inc()
			}
		}
	})
}

func (p *preCheckInCommandsImpl) Previous(ctx context.Context, bookingID string) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.Previous(p.clock.Now())
	})
}

func (p *preCheckInCommandsImpl) UpdateGuestInfo(ctx context.Context, bookingID string, patch precheckin.GuestInfoPatch) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.UpdateGuestInfo(patch, p.clock.Now())
	})
}

func (p *preCheckInCommandsImpl) UpdateIDVerification(ctx context.Context, bookingID string, patch precheckin.IDVerificationPatch) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.UpdateIDVerification(patch, p.clock.Now())
	})
}

func (p *preCheckInCommandsImpl) UpdateRoomSelection(ctx context.Context, bookingID string, sel precheckin.RoomSelection) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.UpdateRoomSelection(sel, p.clock.Now())
	})
}

func (p *preCheckInCommandsImpl) UpdateSpecialRequests(ctx context.Context, bookingID string, patch precheckin.SpecialRequestsPatch) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.UpdateSpecialRequests(patch, p.clock.Now())
	})
}

func (p *preCheckInCommandsImpl) Sign(ctx context.Context, bookingID string, signature string) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		d.UpdateSignature(signature, p.clock.Now())
	})
}

func (p *preCheckInCommandsImpl) Complete(ctx context.Context, bookingID string) (*precheckin.Draft, error) {
	return p.mutate(ctx, bookingID, func(d *precheckin.Draft) {
		wasCompleted := d.Completed
		d.Complete(p.clock.Now())
		if !wasCompleted && d.Completed {
			p.metrics.PreCheckInsCompleted.Inc()
		}
	})
}

func (p *preCheckInCommandsImpl) mutate(ctx context.Context, bookingID string, fn func(*precheckin.Draft)) (*precheckin.Draft, error) {
	draft, err := p.loadOrInit(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	fn(draft)
	if err := p.drafts.Save(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to save pre-check-in")
	}
	return draft, nil
}

func (p *preCheckInCommandsImpl) loadOrInit(ctx context.Context, bookingID string) (*precheckin.Draft, error) {
	draft, err := p.drafts.Find(ctx, bookingID)
	if err == nil {
		return draft, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return precheckin.NewDraft(bookingID, p.clock.Now()), nil
	}
	return nil, errs.Wrap(err, "failed to load pre-check-in")
}
