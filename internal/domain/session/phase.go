package session

import "github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"

// ===============================
// Session Phase
// ===============================

type Phase string

const (
	PhasePrecall Phase = "precall"
	PhaseActive  Phase = "active"
	PhaseEnded   Phase = "ended"
)

// ===============================
// Participant Role
// ===============================

type Role string

const (
	RolePractitioner Role = "practitioner"
	RolePatient      Role = "patient"
)

// ===============================
// Validations
// ===============================

func CanStart(current Phase) error {
	if current != PhasePrecall {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanToggle covers the device flags; they may be flipped freely until the
// session ends.
func CanToggle(current Phase) error {
	if current == PhaseEnded {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
