package precheckin

import (
	"time"
)

// Sub-records are pointers on the draft: nil means the guest has not reached
// that section yet. Partial updates use pointer-field patch structs and merge
// shallowly; room selection and signature are replaced wholesale.

type GuestInfo struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	ArrivalTime string `json:"arrival_time,omitempty"`
}

type GuestInfoPatch struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	ArrivalTime *string `json:"arrival_time,omitempty"`
}

type IDVerification struct {
	DocumentType   string `json:"document_type,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	DocumentImage  string `json:"document_image,omitempty"`
}

type IDVerificationPatch struct {
	DocumentType   *string `json:"document_type,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	ExpiryDate     *string `json:"expiry_date,omitempty"`
	DocumentImage  *string `json:"document_image,omitempty"`
}

type RoomSelection struct {
	RoomID   string `json:"room_id"`
	RoomName string `json:"room_name,omitempty"`
	Floor    int    `json:"floor,omitempty"`
	View     string `json:"view,omitempty"`
}

type SpecialRequests struct {
	ExtraPillows   bool   `json:"extra_pillows"`
	Hypoallergenic bool   `json:"hypoallergenic"`
	QuietRoom      bool   `json:"quiet_room"`
	AccessibleRoom bool   `json:"accessible_room"`
	DietaryNotes   string `json:"dietary_notes,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type SpecialRequestsPatch struct {
	ExtraPillows   *bool   `json:"extra_pillows,omitempty"`
	Hypoallergenic *bool   `json:"hypoallergenic,omitempty"`
	QuietRoom      *bool   `json:"quiet_room,omitempty"`
	AccessibleRoom *bool   `json:"accessible_room,omitempty"`
	DietaryNotes   *string `json:"dietary_notes,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Draft is the per-booking wizard record persisted at preCheckIn_<bookingID>.
// The persisted step field always mirrors the in-memory position; every
// transition writes through.
type Draft struct {
	BookingID        string           `json:"booking_id"`
	Step             Step             `json:"step"`
	Completed        bool             `json:"completed"`
	GuestInfo        *GuestInfo       `json:"guest_info,omitempty"`
	IDVerification   *IDVerification  `json:"id_verification,omitempty"`
	RoomSelection    *RoomSelection   `json:"room_selection,omitempty"`
	SpecialRequests  *SpecialRequests `json:"special_requests,omitempty"`
	TermsAccepted    bool             `json:"terms_accepted"`
	Signature        string           `json:"signature,omitempty"`
	DigitalKeyIssued bool             `json:"digital_key_issued"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func NewDraft(bookingID string, now time.Time) *Draft {
	return &Draft{
		BookingID: bookingID,
		Step:      StepWelcome,
		UpdatedAt: now,
	}
}

// GoToStep sets the position unconditionally; the caller is trusted. Gating
// stays advisory, see StepState.
func (d *Draft) GoToStep(step Step, now time.Time) {
	d.Step = step
	d.UpdatedAt = now
}

// Next advances one step, a no-op at the final step.
func (d *Draft) Next(now time.Time) {
	if !d.Step.IsFinal() {
		d.Step++
		d.UpdatedAt = now
	}
}

// Previous goes back one step, a no-op at the first step.
func (d *Draft) Previous(now time.Time) {
	if d.Step > StepWelcome {
		d.Step--
		d.UpdatedAt = now
	}
}

func (d *Draft) UpdateGuestInfo(p GuestInfoPatch, now time.Time) {
	if d.GuestInfo == nil {
		d.GuestInfo = &GuestInfo{}
	}
	applyString(&d.GuestInfo.FirstName, p.FirstName)
	applyString(&d.GuestInfo.LastName, p.LastName)
	applyString(&d.GuestInfo.Email, p.Email)
	applyString(&d.GuestInfo.Phone, p.Phone)
	applyString(&d.GuestInfo.Address, p.Address)
	applyString(&d.GuestInfo.City, p.City)
	applyString(&d.GuestInfo.Country, p.Country)
	applyString(&d.GuestInfo.ArrivalTime, p.ArrivalTime)
	d.UpdatedAt = now
}

func (d *Draft) UpdateIDVerification(p IDVerificationPatch, now time.Time) {
	if d.IDVerification == nil {
		d.IDVerification = &IDVerification{}
	}
	applyString(&d.IDVerification.DocumentType, p.DocumentType)
	applyString(&d.IDVerification.DocumentNumber, p.DocumentNumber)
	applyString(&d.IDVerification.Nationality, p.Nationality)
	applyString(&d.IDVerification.ExpiryDate, p.ExpiryDate)
	applyString(&d.IDVerification.DocumentImage, p.DocumentImage)
	d.UpdatedAt = now
}

// UpdateRoomSelection replaces the record wholesale.
func (d *Draft) UpdateRoomSelection(sel RoomSelection, now time.Time) {
	d.RoomSelection = &sel
	d.UpdatedAt = now
}

func (d *Draft) UpdateSpecialRequests(p SpecialRequestsPatch, now time.Time) {
	if d.SpecialRequests == nil {
		d.SpecialRequests = &SpecialRequests{}
	}
	applyBool(&d.SpecialRequests.ExtraPillows, p.ExtraPillows)
	applyBool(&d.SpecialRequests.Hypoallergenic, p.Hypoallergenic)
	applyBool(&d.SpecialRequests.QuietRoom, p.QuietRoom)
	applyBool(&d.SpecialRequests.AccessibleRoom, p.AccessibleRoom)
	applyString(&d.SpecialRequests.DietaryNotes, p.DietaryNotes)
	applyString(&d.SpecialRequests.Notes, p.Notes)
	d.UpdatedAt = now
}

// UpdateSignature replaces the signature payload and accepts the terms as a
// side effect: signing is the acceptance gesture.
func (d *Draft) UpdateSignature(signature string, now time.Time) {
	d.Signature = signature
	d.TermsAccepted = true
	d.UpdatedAt = now
}

// Complete is idempotent; the first CompletedAt wins.
func (d *Draft) Complete(now time.Time) {
	if d.Completed {
		return
	}
	d.Completed = true
	d.DigitalKeyIssued = true
	d.CompletedAt = &now
	d.UpdatedAt = now
}

// StepState reports whether a step's data is present. Welcome and payment
// confirmation are informational screens and always count as complete. The
// result drives progress indicators only; navigation is never blocked on it.
func (d *Draft) StepState(step Step) bool {
	switch step {
	case StepWelcome, StepPaymentConfirmation:
		return true
	case StepGuestInfo:
		return d.GuestInfo != nil && d.GuestInfo.FirstName != "" && d.GuestInfo.Email != ""
	case StepIDVerification:
		return d.IDVerification != nil && d.IDVerification.DocumentNumber != ""
	case StepRoomSelection:
		return d.RoomSelection != nil
	case StepSpecialRequests:
		return d.SpecialRequests != nil
	case StepTermsSignature:
		return d.TermsAccepted
	case StepComplete:
		return d.Completed
	default:
		return false
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
