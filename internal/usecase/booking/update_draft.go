package booking

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/timezone"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// UpdateDraftInput patches the draft; nil fields are left alone, so the
// wizard can write one field at a time.
type UpdateDraftInput struct {
	Date          *string
	Time          *string
	Modality      *string
	Reason        *string
	Urgency       *string
	Notes         *string
	PaymentMethod *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateDraft struct {
	store    domain.Store
	clinicTZ string
}

func NewUpdateDraft(store domain.Store, clinicTZ string) *UpdateDraft {
	return &UpdateDraft{store: store, clinicTZ: clinicTZ}
}

func (uc *UpdateDraft) Execute(
	ctx context.Context,
	workflowID string,
	patientID uint,
	in UpdateDraftInput,
) (*domain.Workflow, error) {

	w, err := uc.store.Get(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if w.PatientID != patientID {
		return nil, domain.ErrWorkflowNotFound
	}

	if in.Date != nil {
		if !validators.IsValidDate(*in.Date) {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		if validators.IsPastDate(*in.Date, timezone.Today(uc.clinicTZ)) {
			return nil, httperr.ErrBusiness("date_in_past")
		}
		w.Draft.Date = *in.Date
	}

	if in.Time != nil {
		if !domain.IsBookableSlot(*in.Time) {
			return nil, httperr.ErrBusiness("invalid_time_slot")
		}
		w.Draft.Time = *in.Time
	}

	if in.Modality != nil {
		m := domain.Modality(*in.Modality)
		if !domain.IsValidModality(m) {
			return nil, httperr.ErrBusiness("invalid_modality")
		}
		w.Draft.Modality = m
	}

	if in.Reason != nil {
		w.Draft.Reason = *in.Reason
	}

	if in.Urgency != nil {
		u := domain.Urgency(*in.Urgency)
		if !domain.IsValidUrgency(u) {
			return nil, httperr.ErrBusiness("invalid_urgency")
		}
		w.Draft.Urgency = u
	}

	if in.Notes != nil {
		w.Draft.Notes = *in.Notes
	}

	if in.PaymentMethod != nil {
		p := domain.PaymentMethod(*in.PaymentMethod)
		if !domain.IsValidPaymentMethod(p) {
			return nil, httperr.ErrBusiness("invalid_payment_method")
		}
		w.Draft.PaymentMethod = p
	}

	if err := uc.store.Save(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}
