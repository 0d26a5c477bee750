package consultation

import (
	"context"

	"github.com/google/uuid"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/audit"
	bookingdomain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

type ActivateSession struct {
	appointments bookingdomain.Repository
	registry     *domain.Registry
	transport    domain.Transport
	audit        *audit.Dispatcher
}

func NewActivateSession(
	appointments bookingdomain.Repository,
	registry *domain.Registry,
	transport domain.Transport,
	audit *audit.Dispatcher,
) *ActivateSession {
	return &ActivateSession{
		appointments: appointments,
		registry:     registry,
		transport:    transport,
		audit:        audit,
	}
}

// Execute hydrates a session from a confirmed appointment. Activating the
// same appointment twice returns the existing session, so the "start now"
// path and a scheduled join land on the same instance.
func (uc *ActivateSession) Execute(
	ctx context.Context,
	appointmentID string,
	caller Caller,
) (*domain.Session, error) {

	ap, err := uc.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status != string(bookingdomain.StatusConfirmed) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if existing, ok := uc.registry.FindByAppointment(ap.ID); ok {
		if err := requireParticipant(existing, caller); err != nil {
			return nil, err
		}
		return existing, nil
	}

	s := domain.New(
		uuid.New().String(),
		ap.ID,
		ap.PractitionerID,
		ap.PatientID,
		uc.transport,
	)

	if err := requireParticipant(s, caller); err != nil {
		return nil, err
	}

	uc.registry.Add(s)

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "consultation_activated",
		Entity:   "consultation",
		EntityID: s.ID,
	})

	return s, nil
}
