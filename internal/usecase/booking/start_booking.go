package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/domain/directory"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/timezone"
)

type StartBooking struct {
	dir      directory.Repository
	store    domain.Store
	clinicTZ string
}

func NewStartBooking(
	dir directory.Repository,
	store domain.Store,
	clinicTZ string,
) *StartBooking {
	return &StartBooking{
		dir:      dir,
		store:    store,
		clinicTZ: clinicTZ,
	}
}

func (uc *StartBooking) Execute(
	ctx context.Context,
	patientID uint,
	practitionerID uint,
) (*domain.Workflow, error) {

	if _, err := uc.dir.GetPractitionerByID(ctx, practitionerID); err != nil {
		return nil, httperr.ErrBusiness("practitioner_not_found")
	}

	w := domain.NewWorkflow(
		uuid.New().String(),
		patientID,
		practitionerID,
		timezone.NowIn(uc.clinicTZ),
	)

	if err := uc.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}
