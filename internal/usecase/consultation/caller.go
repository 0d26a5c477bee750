package consultation

import (
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

// Caller is the authenticated participant identity, taken from the token.
type Caller struct {
	UserID         uint
	PractitionerID *uint
}

func (c Caller) Role(s *domain.Session) domain.Role {
	return s.RoleOf(c.PractitionerID)
}

// requireParticipant hides sessions from everyone but their two parties.
func requireParticipant(s *domain.Session, c Caller) error {
	if s.PatientID == c.UserID {
		return nil
	}
	if c.PractitionerID != nil && *c.PractitionerID == s.PractitionerID {
		return nil
	}
	return httperr.ErrBusiness("session_not_found")
}
