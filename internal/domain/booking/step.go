package booking

import "github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"

// ===============================
// Workflow Steps
// ===============================

type Step int

const (
	StepDateTime Step = iota + 1
	StepMedicalInfo
	StepReview
	StepPayment
)

func (s Step) Label() string {
	switch s {
	case StepDateTime:
		return "datetime"
	case StepMedicalInfo:
		return "medical_info"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// ===============================
// Entry Guards
// ===============================

// CanLeave decides whether the draft satisfies the step's exit guard. A
// failing guard returns a GuardError naming the missing field; it never
// mutates the draft.
func CanLeave(step Step, d Draft) error {
	switch step {
	case StepDateTime:
		if d.Date == "" {
			return httperr.ErrGuard("date")
		}
		if d.Time == "" {
			return httperr.ErrGuard("time")
		}
	case StepMedicalInfo:
		if !d.HasReason() {
			return httperr.ErrGuard("reason")
		}
	case StepReview:
		// Pure display step, nothing to check.
	}
	return nil
}

// CanConfirm is the terminal guard at the payment step.
func CanConfirm(step Step, d Draft) error {
	if step != StepPayment {
		return httperr.ErrBusiness("invalid_state")
	}
	if !d.HasPaymentMethod() {
		return httperr.ErrGuard("payment_method")
	}
	return nil
}
