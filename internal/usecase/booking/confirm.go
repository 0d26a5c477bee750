package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/audit"
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/domain/directory"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/timezone"
)

type Confirm struct {
	dir      directory.Repository
	recorder domain.Recorder
	store    domain.Store
	audit    *audit.Dispatcher
	clinicTZ string
}

func NewConfirm(
	dir directory.Repository,
	recorder domain.Recorder,
	store domain.Store,
	audit *audit.Dispatcher,
	clinicTZ string,
) *Confirm {
	return &Confirm{
		dir:      dir,
		recorder: recorder,
		store:    store,
		audit:    audit,
		clinicTZ: clinicTZ,
	}
}

// Execute is the wizard's terminal transition: freeze the draft into an
// Appointment, hand it to the recorder, then drop the workflow so a fresh
// one starts empty.
func (uc *Confirm) Execute(
	ctx context.Context,
	workflowID string,
	patientID uint,
) (*models.Appointment, error) {

	w, err := uc.store.Get(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if w.PatientID != patientID {
		return nil, domain.ErrWorkflowNotFound
	}

	practitioner, err := uc.dir.GetPractitionerByID(ctx, w.PractitionerID)
	if err != nil {
		return nil, httperr.ErrBusiness("practitioner_not_found")
	}

	ap, err := w.Confirm(
		uuid.New().String(),
		practitioner,
		timezone.NowIn(uc.clinicTZ),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.recorder.Record(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.store.Delete(ctx, w.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &patientID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}
