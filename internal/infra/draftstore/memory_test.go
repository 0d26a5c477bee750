package draftstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	w := booking.NewWorkflow("wf-1", 10, 1, time.Now())
	w.Draft.Date = "2025-06-10"

	if err := store.Save(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Get(ctx, "wf-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Draft.Date != "2025-06-10" {
		t.Fatalf("draft date = %q, want 2025-06-10", got.Draft.Date)
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Save(ctx, booking.NewWorkflow("wf-1", 10, 1, time.Now()))

	a, _ := store.Get(ctx, "wf-1")
	a.Draft.Reason = "tampered"

	b, _ := store.Get(ctx, "wf-1")
	if b.Draft.Reason != "" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestMemoryStoreMissAndDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, booking.ErrWorkflowNotFound) {
		t.Fatalf("get miss: %v, want booking.ErrWorkflowNotFound", err)
	}

	store.Save(ctx, booking.NewWorkflow("wf-1", 10, 1, time.Now()))
	if err := store.Delete(ctx, "wf-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "wf-1"); !errors.Is(err, booking.ErrWorkflowNotFound) {
		t.Fatalf("deleted workflow still readable: %v", err)
	}
}
