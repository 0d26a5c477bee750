package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/audit"
	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/infra/draftstore"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

const testTZ = "America/New_York"

// ======================================================
// FAKES
// ======================================================

type fakeDirectory struct {
	practitioners map[uint]models.Practitioner
}

func (f *fakeDirectory) ListPractitioners(_ context.Context) ([]models.Practitioner, error) {
	out := make([]models.Practitioner, 0, len(f.practitioners))
	for _, p := range f.practitioners {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeDirectory) GetPractitionerByID(_ context.Context, id uint) (*models.Practitioner, error) {
	p, ok := f.practitioners[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &p, nil
}

type fakeRecorder struct {
	recorded []*models.Appointment
}

func (f *fakeRecorder) Record(_ context.Context, ap *models.Appointment) error {
	f.recorded = append(f.recorded, ap)
	return nil
}

type fixture struct {
	dir      *fakeDirectory
	recorder *fakeRecorder
	store    *draftstore.MemoryStore

	start   *StartBooking
	update  *UpdateDraft
	advance *Advance
	retreat *Retreat
	confirm *Confirm
}

func newFixture() *fixture {
	dir := &fakeDirectory{
		practitioners: map[uint]models.Practitioner{
			1: {ID: 1, Name: "Dr. Sarah Wilson", Specialty: "Cardiology", ConsultationFee: 150},
		},
	}
	recorder := &fakeRecorder{}
	store := draftstore.NewMemoryStore()
	dispatcher := audit.NewDispatcher(audit.New(nil), zap.NewNop())

	return &fixture{
		dir:      dir,
		recorder: recorder,
		store:    store,
		start:    NewStartBooking(dir, store, testTZ),
		update:   NewUpdateDraft(store, testTZ),
		advance:  NewAdvance(store),
		retreat:  NewRetreat(store),
		confirm:  NewConfirm(dir, recorder, store, dispatcher, testTZ),
	}
}

func strPtr(s string) *string { return &s }

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

// ======================================================
// TESTS
// ======================================================

func TestStartBookingUnknownPractitioner(t *testing.T) {
	f := newFixture()

	_, err := f.start.Execute(context.Background(), 10, 999)
	if !httperr.IsBusiness(err, "practitioner_not_found") {
		t.Fatalf("got %v, want practitioner_not_found", err)
	}
}

func TestStartBookingCreatesFreshWorkflow(t *testing.T) {
	f := newFixture()

	w, err := f.start.Execute(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if w.Step != domain.StepDateTime {
		t.Fatalf("step = %v, want datetime", w.Step)
	}

	stored, err := f.store.Get(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("workflow not stored: %v", err)
	}
	if stored.PatientID != 10 || stored.PractitionerID != 1 {
		t.Fatalf("stored parties = %d/%d, want 10/1", stored.PatientID, stored.PractitionerID)
	}
}

func TestUpdateDraftRejectsBadInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w, _ := f.start.Execute(ctx, 10, 1)

	cases := []struct {
		name string
		in   UpdateDraftInput
		code string
	}{
		{"malformed date", UpdateDraftInput{Date: strPtr("06/10/2025")}, "invalid_date"},
		{"past date", UpdateDraftInput{Date: strPtr("2020-01-01")}, "date_in_past"},
		{"off-list slot", UpdateDraftInput{Time: strPtr("12:00 PM")}, "invalid_time_slot"},
		{"bad modality", UpdateDraftInput{Modality: strPtr("telepathy")}, "invalid_modality"},
		{"bad urgency", UpdateDraftInput{Urgency: strPtr("whenever")}, "invalid_urgency"},
		{"bad payment method", UpdateDraftInput{PaymentMethod: strPtr("iou")}, "invalid_payment_method"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.update.Execute(ctx, w.ID, 10, tc.in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("got %v, want %s", err, tc.code)
			}
		})
	}

	// Rejected patches must not dirty the stored draft.
	stored, _ := f.store.Get(ctx, w.ID)
	if stored.Draft.Date != "" || stored.Draft.Time != "" {
		t.Fatalf("rejected updates leaked into the draft: %+v", stored.Draft)
	}
}

func TestUpdateDraftHidesForeignWorkflows(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w, _ := f.start.Execute(ctx, 10, 1)

	_, err := f.update.Execute(ctx, w.ID, 77, UpdateDraftInput{Reason: strPtr("sniffles")})
	if !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("got %v, want booking_not_found for a foreign patient", err)
	}
}

func TestAdvanceRejectedLeavesStoredStepAlone(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w, _ := f.start.Execute(ctx, 10, 1)

	_, err := f.advance.Execute(ctx, w.ID, 10)
	if _, ok := httperr.IsGuard(err); !ok {
		t.Fatalf("got %v, want guard error", err)
	}

	stored, _ := f.store.Get(ctx, w.ID)
	if stored.Step != domain.StepDateTime {
		t.Fatalf("stored step = %v, want datetime", stored.Step)
	}
}

func TestRetreatFromFirstStepDropsWorkflow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w, _ := f.start.Execute(ctx, 10, 1)

	out, err := f.retreat.Execute(ctx, w.ID, 10)
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if !out.Exited {
		t.Fatal("retreat from first step must exit")
	}

	if _, err := f.store.Get(ctx, w.ID); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("exited workflow still stored: %v", err)
	}
}

func TestFullWizardFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	w, err := f.start.Execute(ctx, 10, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Step 1: pick a schedule.
	if _, err := f.update.Execute(ctx, w.ID, 10, UpdateDraftInput{
		Date: strPtr(futureDate()),
		Time: strPtr("2:00 PM"),
	}); err != nil {
		t.Fatalf("update schedule: %v", err)
	}
	if _, err := f.advance.Execute(ctx, w.ID, 10); err != nil {
		t.Fatalf("advance to medical info: %v", err)
	}

	// Step 2: describe the visit, then peek back and return.
	if _, err := f.update.Execute(ctx, w.ID, 10, UpdateDraftInput{
		Reason:  strPtr("chest pain"),
		Urgency: strPtr("urgent"),
		Notes:   strPtr("taking aspirin"),
	}); err != nil {
		t.Fatalf("update medical info: %v", err)
	}
	if _, err := f.retreat.Execute(ctx, w.ID, 10); err != nil {
		t.Fatalf("retreat: %v", err)
	}
	back, _ := f.store.Get(ctx, w.ID)
	if back.Draft.Reason != "chest pain" {
		t.Fatalf("reason lost on retreat: %+v", back.Draft)
	}
	if _, err := f.advance.Execute(ctx, w.ID, 10); err != nil {
		t.Fatalf("re-advance: %v", err)
	}

	// Steps 3 and 4: review, then pay.
	if _, err := f.advance.Execute(ctx, w.ID, 10); err != nil {
		t.Fatalf("advance to review: %v", err)
	}
	if _, err := f.advance.Execute(ctx, w.ID, 10); err != nil {
		t.Fatalf("advance to payment: %v", err)
	}
	if _, err := f.update.Execute(ctx, w.ID, 10, UpdateDraftInput{
		PaymentMethod: strPtr("card"),
	}); err != nil {
		t.Fatalf("update payment: %v", err)
	}

	ap, err := f.confirm.Execute(ctx, w.ID, 10)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if ap.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", ap.Status)
	}
	if ap.TotalCost != 155 {
		t.Errorf("total cost = %v, want 155", ap.TotalCost)
	}
	if len(f.recorder.recorded) != 1 {
		t.Fatalf("recorder saw %d appointments, want 1", len(f.recorder.recorded))
	}

	// The wizard is gone once the appointment exists.
	if _, err := f.store.Get(ctx, w.ID); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("confirmed workflow still stored: %v", err)
	}
}

func TestConfirmBeforePaymentStep(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w, _ := f.start.Execute(ctx, 10, 1)

	_, err := f.confirm.Execute(ctx, w.ID, 10)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("got %v, want invalid_state", err)
	}
	if len(f.recorder.recorded) != 0 {
		t.Fatal("nothing may be recorded before the payment step")
	}
}
