package booking

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
)

type Advance struct {
	store domain.Store
}

func NewAdvance(store domain.Store) *Advance {
	return &Advance{store: store}
}

func (uc *Advance) Execute(
	ctx context.Context,
	workflowID string,
	patientID uint,
) (*domain.Workflow, error) {

	w, err := uc.store.Get(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if w.PatientID != patientID {
		return nil, domain.ErrWorkflowNotFound
	}

	if err := w.Advance(); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}
