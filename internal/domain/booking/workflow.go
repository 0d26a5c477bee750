package booking

import (
	"time"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

// PlatformFee is added on top of the practitioner's consultation fee.
const PlatformFee = 5.00

// ===============================
// Workflow
// ===============================

// Workflow is the step-gated wizard over one draft. Fields are exported so
// the draft store can round-trip it as JSON.
type Workflow struct {
	ID             string    `json:"id"`
	PatientID      uint      `json:"patient_id"`
	PractitionerID uint      `json:"practitioner_id"`

	Step   Step  `json:"step"`
	Draft  Draft `json:"draft"`
	Exited bool  `json:"exited"`

	CreatedAt time.Time `json:"created_at"`
}

func NewWorkflow(id string, patientID, practitionerID uint, now time.Time) *Workflow {
	return &Workflow{
		ID:             id,
		PatientID:      patientID,
		PractitionerID: practitionerID,
		Step:           StepDateTime,
		Draft:          NewDraft(),
		CreatedAt:      now,
	}
}

// ===============================
// Transitions
// ===============================

// Advance moves one step forward when the current step's guard holds. The
// draft is left untouched either way.
func (w *Workflow) Advance() error {
	if w.Exited {
		return httperr.ErrBusiness("invalid_state")
	}
	if w.Step >= StepPayment {
		return httperr.ErrBusiness("invalid_state")
	}
	if err := CanLeave(w.Step, w.Draft); err != nil {
		return err
	}
	w.Step++
	return nil
}

// Retreat moves one step back, preserving every entered value. Backing out
// of the first step exits the workflow entirely.
func (w *Workflow) Retreat() error {
	if w.Exited {
		return httperr.ErrBusiness("invalid_state")
	}
	if w.Step == StepDateTime {
		w.Exited = true
		return nil
	}
	w.Step--
	return nil
}

// Confirm freezes the draft into an immutable Appointment. The caller
// supplies the practitioner so the total can be computed from its fee.
func (w *Workflow) Confirm(id string, p *models.Practitioner, now time.Time) (*models.Appointment, error) {
	if w.Exited {
		return nil, httperr.ErrBusiness("invalid_state")
	}
	if err := CanConfirm(w.Step, w.Draft); err != nil {
		return nil, err
	}

	d := w.Draft
	return &models.Appointment{
		ID:             id,
		PractitionerID: p.ID,
		PatientID:      w.PatientID,
		Date:           d.Date,
		Time:           d.Time,
		Modality:       string(d.Modality),
		Reason:         d.Reason,
		Urgency:        string(d.Urgency),
		Notes:          d.Notes,
		PaymentMethod:  string(d.PaymentMethod),
		Status:         string(StatusConfirmed),
		TotalCost:      p.ConsultationFee + PlatformFee,
		CreatedAt:      now,
	}, nil
}
