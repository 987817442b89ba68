package request

import (
	"time"

	"lumiere-guest-api/internal/domain/booking"
)

type SetDraftRequest struct {
	RoomID   string    `json:"room_id" binding:"required"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	Guests   int       `json:"guests" binding:"required,min=1"`
}

type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

func (r *ContactRequest) ToDomain() *booking.GuestContact {
	return &booking.GuestContact{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

type UpdateDraftRequest struct {
	RoomID        *string                       `json:"room_id,omitempty"`
	CheckIn       *time.Time                    `json:"check_in,omitempty"`
	CheckOut      *time.Time                    `json:"check_out,omitempty"`
	Guests        *int                          `json:"guests,omitempty" binding:"omitempty,min=1"`
	Requests      *booking.SpecialRequestsPatch `json:"requests,omitempty"`
	Contact       *ContactRequest               `json:"contact,omitempty"`
	TermsAccepted *bool                         `json:"terms_accepted,omitempty"`
}

type CardRequest struct {
	Number   string `json:"number" binding:"required"`
	Holder   string `json:"holder" binding:"required"`
	ExpMonth int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear  int    `json:"exp_year" binding:"required"`
	CVC      string `json:"cvc" binding:"required"`
}

type SubmitBookingRequest struct {
	Card CardRequest `json:"card" binding:"required"`
}
