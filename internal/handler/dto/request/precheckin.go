package request

import (
	"lumiere-guest-api/internal/domain/precheckin"
)

type StartPreCheckInRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type GoToStepRequest struct {
	Step int `json:"step" binding:"required,min=1,max=8"`
}

// Section payloads reuse the domain patch structs directly; gin binds the
// pointer fields so absent keys stay nil and merge as no-ops.

type UpdateGuestInfoRequest struct {
	GuestInfo precheckin.GuestInfoPatch `json:"guest_info"`
}

type UpdateIDVerificationRequest struct {
	IDVerification precheckin.IDVerificationPatch `json:"id_verification"`
}

type UpdateRoomSelectionRequest struct {
	RoomID   string `json:"room_id" binding:"required"`
	RoomName string `json:"room_name"`
	Floor    int    `json:"floor"`
	View     string `json:"view"`
}

func (r *UpdateRoomSelectionRequest) ToDomain() precheckin.RoomSelection {
	return precheckin.RoomSelection{
		RoomID:   r.RoomID,
		RoomName: r.RoomName,
		Floor:    r.Floor,
		View:     r.View,
	}
}

type UpdateSpecialRequestsRequest struct {
	SpecialRequests precheckin.SpecialRequestsPatch `json:"special_requests"`
}

type SignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}
