package consultation

import (
	"github.com/MediLinkServices01/telehealth-scheduler/internal/audit"
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

type EndSession struct {
	registry *domain.Registry
	audit    *audit.Dispatcher
}

func NewEndSession(registry *domain.Registry, audit *audit.Dispatcher) *EndSession {
	return &EndSession{registry: registry, audit: audit}
}

// Execute ends the session for either participant. Ending twice is a no-op
// and only the first call is audited.
func (uc *EndSession) Execute(sessionID string, caller Caller) (*domain.Session, error) {
	s, ok := uc.registry.Get(sessionID)
	if !ok {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	if err := requireParticipant(s, caller); err != nil {
		return nil, err
	}

	if s.End() {
		uc.audit.Dispatch(audit.Event{
			UserID:   &caller.UserID,
			Action:   "consultation_ended",
			Entity:   "consultation",
			EntityID: s.ID,
			Metadata: map[string]any{"duration_seconds": s.Elapsed()},
		})
	}

	return s, nil
}
