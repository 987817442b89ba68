package precheckin

// Step is the 1-based position in the linear pre-check-in wizard. Transitions
// are only +1, -1 or a direct set; there is no branching and no re-entry.
type Step int

const (
	StepWelcome Step = iota + 1
	StepGuestInfo
	StepIDVerification
	StepRoomSelection
	StepSpecialRequests
	StepPaymentConfirmation
	StepTermsSignature
	StepComplete

	TotalSteps = int(StepComplete)
)

func (s Step) IsValid() bool {
	return s >= StepWelcome && s <= StepComplete
}

func (s Step) IsFinal() bool {
	return s == StepComplete
}

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepGuestInfo:
		return "guest_info"
	case StepIDVerification:
		return "id_verification"
	case StepRoomSelection:
		return "room_selection"
	case StepSpecialRequests:
		return "special_requests"
	case StepPaymentConfirmation:
		return "payment_confirmation"
	case StepTermsSignature:
		return "terms_signature"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}
