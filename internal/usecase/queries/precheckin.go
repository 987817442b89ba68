package queries

import (
	"context"

	"lumiere-guest-api/internal/domain/precheckin"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/errs"
)

var ErrPreCheckInNotFound = errs.New("pre-check-in not found")

type PreCheckInReadStore interface {
	Find(ctx context.Context, bookingID string) (*precheckin.Draft, error)
}

type PreCheckInQueries struct {
	drafts PreCheckInReadStore
}

func NewPreCheckInQueries(drafts PreCheckInReadStore) *PreCheckInQueries {
	return &PreCheckInQueries{drafts: drafts}
}

func (q *PreCheckInQueries) Get(ctx context.Context, bookingID string) (*PreCheckInView, error) {
	d, err := q.drafts.Find(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPreCheckInNotFound)
		}
		return nil, errs.Wrap(err, "failed to get pre-check-in")
	}
	view := toPreCheckInView(d)
	return &view, nil
}

func toPreCheckInView(d *precheckin.Draft) PreCheckInView {
	progress := make([]StepProgress, 0, precheckin.TotalSteps)
	for s := precheckin.StepWelcome; s <= precheckin.StepComplete; s++ {
		progress = append(progress, StepProgress{
			Step:     int(s),
			Name:     s.String(),
			Complete: d.StepState(s),
		})
	}

	view := PreCheckInView{
		BookingID:        d.BookingID,
		Step:             int(d.Step),
		StepName:         d.Step.String(),
		TotalSteps:       precheckin.TotalSteps,
		Completed:        d.Completed,
		TermsAccepted:    d.TermsAccepted,
		DigitalKeyIssued: d.DigitalKeyIssued,
		CompletedAt:      d.CompletedAt,
		Progress:         progress,
	}
	if d.GuestInfo != nil {
		view.GuestInfo = d.GuestInfo
	}
	if d.IDVerification != nil {
		view.IDVerification = d.IDVerification
	}
	if d.RoomSelection != nil {
		view.RoomSelection = d.RoomSelection
	}
	if d.SpecialRequests != nil {
		view.SpecialRequests = d.SpecialRequests
	}
	return view
}
