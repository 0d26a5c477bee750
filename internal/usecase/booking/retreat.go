package booking

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
)

type Retreat struct {
	store domain.Store
}

func NewRetreat(store domain.Store) *Retreat {
	return &Retreat{store: store}
}

// Execute steps the wizard back. Backing out of the first step discards the
// draft entirely; no partial state survives.
func (uc *Retreat) Execute(
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

	if err := w.Retreat(); err != nil {
		return nil, err
	}

	if w.Exited {
		if err := uc.store.Delete(ctx, w.ID); err != nil {
			return nil, err
		}
		return w, nil
	}

	if err := uc.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}
