package response

import (
	"time"

	"lumiere-guest-api/internal/domain/precheckin"
	"lumiere-guest-api/internal/usecase/queries"
)

type PreCheckInResponse struct {
	BookingID        string     `json:"bookingId"`
	Step             int        `json:"step"`
	StepName         string     `json:"stepName"`
	TotalSteps       int        `json:"totalSteps"`
	Completed        bool       `json:"completed"`
	GuestInfo        any        `json:"guestInfo,omitempty"`
	IDVerification   any        `json:"idVerification,omitempty"`
	RoomSelection    any        `json:"roomSelection,omitempty"`
	SpecialRequests  any        `json:"specialRequests,omitempty"`
	TermsAccepted    bool       `json:"termsAccepted"`
	DigitalKeyIssued bool       `json:"digitalKeyIssued"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

type StartPreCheckInResponse struct {
	Token      string              `json:"token"`
	PreCheckIn *PreCheckInResponse `json:"preCheckIn"`
}

type StepProgressResponse struct {
	Step     int    `json:"step"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type PreCheckInDetailResponse struct {
	PreCheckInResponse
	Progress []StepProgressResponse `json:"progress"`
}

func FromPreCheckIn(d *precheckin.Draft) *PreCheckInResponse {
	resp := &PreCheckInResponse{
		BookingID:        d.BookingID,
		Step:             int(d.Step),
		StepName:         d.Step.String(),
		TotalSteps:       precheckin.TotalSteps,
		Completed:        d.Completed,
		TermsAccepted:    d.TermsAccepted,
		DigitalKeyIssued: d.DigitalKeyIssued,
		CompletedAt:      d.CompletedAt,
	}
	if d.GuestInfo != nil {
		resp.GuestInfo = d.GuestInfo
	}
	if d.IDVerification != nil {
		resp.IDVerification = d.IDVerification
	}
	if d.RoomSelection != nil {
		resp.RoomSelection = d.RoomSelection
	}
	if d.SpecialRequests != nil {
		resp.SpecialRequests = d.SpecialRequests
	}
	return resp
}

func FromPreCheckInView(v *queries.PreCheckInView) *PreCheckInDetailResponse {
	progress := make([]StepProgressResponse, 0, len(v.Progress))
	for _, p := range v.Progress {
		progress = append(progress, StepProgressResponse{
			Step:     p.Step,
			Name:     p.Name,
			Complete: p.Complete,
		})
	}

	return &PreCheckInDetailResponse{
		PreCheckInResponse: PreCheckInResponse{
			BookingID:        v.BookingID,
			Step:             v.Step,
			StepName:         v.StepName,
			TotalSteps:       v.TotalSteps,
			Completed:        v.Completed,
			GuestInfo:        v.GuestInfo,
			IDVerification:   v.IDVerification,
			RoomSelection:    v.RoomSelection,
			SpecialRequests:  v.SpecialRequests,
			TermsAccepted:    v.TermsAccepted,
			DigitalKeyIssued: v.DigitalKeyIssued,
			CompletedAt:      v.CompletedAt,
		},
		Progress: progress,
	}
}
