package session

import "sync"

// Registry holds the live sessions by ID. Ended sessions stay registered so
// their summary remains readable.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// FindByAppointment returns the session already activated for an
// appointment, if any.
func (r *Registry) FindByAppointment(appointmentID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.AppointmentID == appointmentID {
			return s, true
		}
	}
	return nil, false
}
