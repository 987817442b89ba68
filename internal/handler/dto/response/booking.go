package response

import (
	"time"

	"github.com/jinzhu/copier"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/usecase/queries"
)

type PricingResponse struct {
	BasePriceCents   int64 `json:"basePriceCents"`
	Nights           int   `json:"nights"`
	SubtotalCents    int64 `json:"subtotalCents"`
	CleaningFeeCents int64 `json:"cleaningFeeCents"`
	ServiceFeeCents  int64 `json:"serviceFeeCents"`
	TaxCents         int64 `json:"taxCents"`
	TotalCents       int64 `json:"totalCents"`
}

type DraftResponse struct {
	RoomID        string          `json:"roomId"`
	RoomName      string          `json:"roomName"`
	RoomImage     string          `json:"roomImage"`
	CheckIn       time.Time       `json:"checkIn"`
	CheckOut      time.Time       `json:"checkOut"`
	Guests        int             `json:"guests"`
	Requests      any             `json:"requests"`
	Contact       any             `json:"contact,omitempty"`
	TermsAccepted bool            `json:"termsAccepted"`
	Pricing       PricingResponse `json:"pricing"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type SubmitResponse struct {
	Reference   string    `json:"reference"`
	Status      string    `json:"status"`
	TotalCents  int64     `json:"totalCents"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type BookingResponse struct {
	Reference    string          `json:"reference"`
	RoomID       string          `json:"roomId"`
	RoomName     string          `json:"roomName"`
	RoomImage    string          `json:"roomImage"`
	CheckIn      time.Time       `json:"checkIn"`
	CheckOut     time.Time       `json:"checkOut"`
	Guests       int             `json:"guests"`
	Pricing      PricingResponse `json:"pricing"`
	PaymentBrand string          `json:"paymentBrand"`
	PaymentLast4 string          `json:"paymentLast4"`
	Status       string          `json:"status"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	CancelledAt  *time.Time      `json:"cancelledAt,omitempty"`
}

type BookingListResponse struct {
	Reference   string    `json:"reference"`
	RoomName    string    `json:"roomName"`
	RoomImage   string    `json:"roomImage"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	TotalCents  int64     `json:"totalCents"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func FromDraft(d *booking.Draft) *DraftResponse {
	resp := &DraftResponse{
		RoomID:        d.Room.ID,
		RoomName:      d.Room.Name,
		RoomImage:     d.Room.Image,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Guests:        d.Guests,
		Requests:      d.Requests,
		TermsAccepted: d.TermsAccepted,
		Pricing:       pricingFromBreakdown(d.Pricing),
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Contact != nil {
		resp.Contact = d.Contact
	}
	return resp
}

func FromDraftView(v *queries.DraftView) *DraftResponse {
	resp := &DraftResponse{
		RoomID:        v.RoomID,
		RoomName:      v.RoomName,
		RoomImage:     v.RoomImage,
		CheckIn:       v.CheckIn,
		CheckOut:      v.CheckOut,
		Guests:        v.Guests,
		Requests:      v.Requests,
		Contact:       v.Contact,
		TermsAccepted: v.TermsAccepted,
		UpdatedAt:     v.UpdatedAt,
	}
	_ = copier.Copy(&resp.Pricing, &v.Pricing)
	return resp
}

func FromSubmitResult(b *booking.Completed) *SubmitResponse {
	return &SubmitResponse{
		Reference:   b.Reference,
		Status:      string(b.Status),
		TotalCents:  b.Pricing.TotalCents,
		SubmittedAt: b.SubmittedAt,
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		Reference:    v.Reference,
		RoomID:       v.RoomID,
		RoomName:     v.RoomName,
		RoomImage:    v.RoomImage,
		CheckIn:      v.CheckIn,
		CheckOut:     v.CheckOut,
		Guests:       v.Guests,
		PaymentBrand: v.PaymentBrand,
		PaymentLast4: v.PaymentLast4,
		Status:       v.Status,
		SubmittedAt:  v.SubmittedAt,
		CancelledAt:  v.CancelledAt,
	}
	_ = copier.Copy(&resp.Pricing, &v.Pricing)
	return resp
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func pricingFromBreakdown(p booking.Breakdown) PricingResponse {
	var resp PricingResponse
	_ = copier.Copy(&resp, &p)
	return resp
}
