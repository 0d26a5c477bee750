package draftstore

import (
	"context"
	"sync"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
)

// MemoryStore is the single-process fallback, also used by tests. Values
// are copied on the way in and out so callers never share a workflow.
type MemoryStore struct {
	mu        sync.RWMutex
	workflows map[string]booking.Workflow
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{workflows: make(map[string]booking.Workflow)}
}

func (s *MemoryStore) Save(_ context.Context, w *booking.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflows[w.ID] = *w
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*booking.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workflows[id]
	if !ok {
		return nil, booking.ErrWorkflowNotFound
	}
	return &w, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.workflows, id)
	return nil
}
