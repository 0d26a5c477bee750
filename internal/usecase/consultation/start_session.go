package consultation

import (
	"github.com/MediLinkServices01/telehealth-scheduler/internal/audit"
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

type StartSession struct {
	registry *domain.Registry
	audit    *audit.Dispatcher
}

func NewStartSession(registry *domain.Registry, audit *audit.Dispatcher) *StartSession {
	return &StartSession{registry: registry, audit: audit}
}

func (uc *StartSession) Execute(sessionID string, caller Caller) (*domain.Session, error) {
	s, ok := uc.registry.Get(sessionID)
	if !ok {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	if err := requireParticipant(s, caller); err != nil {
		return nil, err
	}

	if err := s.Start(); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "consultation_started",
		Entity:   "consultation",
		EntityID: s.ID,
	})

	return s, nil
}
