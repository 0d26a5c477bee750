package session

import (
	"sync"
	"time"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

// ===============================
// Consultation Session
// ===============================

// Session is the live consultation aggregate: one phase field, the device
// flags, the elapsed clock and the chat log. The ticker goroutine is the
// only concurrent writer, so every mutation goes through the mutex.
type Session struct {
	ID             string
	AppointmentID  string
	PractitionerID uint
	PatientID      uint

	mu          sync.Mutex
	phase       Phase
	videoOn     bool
	remoteVideo bool
	audioOn     bool
	screenShare bool
	elapsed     int
	chat        ChatLog

	stop      chan struct{}
	tickEvery time.Duration
	now       func() time.Time
	transport Transport
}

type Option func(*Session)

// WithTickInterval overrides the one-second cadence; tests use it to avoid
// sleeping wall-clock seconds.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.tickEvery = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(id, appointmentID string, practitionerID, patientID uint, transport Transport, opts ...Option) *Session {
	s := &Session{
		ID:             id,
		AppointmentID:  appointmentID,
		PractitionerID: practitionerID,
		PatientID:      patientID,
		phase:          PhasePrecall,
		videoOn:        true,
		remoteVideo:    true,
		audioOn:        true,
		tickEvery:      time.Second,
		now:            time.Now,
		transport:      transport,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ===============================
// Lifecycle
// ===============================

// Start moves precall -> active and begins the elapsed clock.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CanStart(s.phase); err != nil {
		return err
	}

	s.phase = PhaseActive
	s.stop = make(chan struct{})
	go s.run(s.stop)
	return nil
}

// End freezes the elapsed counter and makes the session terminal. It is
// idempotent; ending an already-ended session is a no-op and reports false.
// The chat log and final duration stay readable afterwards.
func (s *Session) End() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return false
	}
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.phase = PhaseEnded
	return true
}

// run owns the clock. Phase is re-checked under the mutex on every tick so
// a tick racing End never lands after the counter froze.
func (s *Session) run(stop chan struct{}) {
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			if s.phase == PhaseActive {
				s.elapsed++
			}
			s.mu.Unlock()
		case <-stop:
			return
		}
	}
}

func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// ===============================
// Device Toggles
// ===============================

// Toggles flip one flag and forward the intent to the transport. They are
// valid in precall and active and never change the phase.

func (s *Session) ToggleVideo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CanToggle(s.phase); err != nil {
		return false, err
	}
	s.videoOn = !s.videoOn
	s.transport.SetVideoEnabled(s.videoOn)
	return s.videoOn, nil
}

func (s *Session) ToggleAudio() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CanToggle(s.phase); err != nil {
		return false, err
	}
	s.audioOn = !s.audioOn
	s.transport.SetAudioEnabled(s.audioOn)
	return s.audioOn, nil
}

func (s *Session) ToggleScreenShare() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CanToggle(s.phase); err != nil {
		return false, err
	}
	s.screenShare = !s.screenShare
	s.transport.SetScreenShare(s.screenShare)
	return s.screenShare, nil
}

// ===============================
// Chat
// ===============================

// SendMessage appends to the chat log. Policy: messages are accepted in any
// phase before ended, so participants can talk while waiting in precall.
func (s *Session) SendMessage(sender Role, text string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return Message{}, httperr.ErrBusiness("invalid_state")
	}
	return s.chat.Append(sender, text, s.now())
}

func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat.Messages()
}

// RoleOf maps a caller identity to its participant role within this
// session. Each participant observes the same session from their own
// perspective, so the role is derived from explicit identity, not a flag.
func (s *Session) RoleOf(practitionerID *uint) Role {
	if practitionerID != nil && *practitionerID == s.PractitionerID {
		return RolePractitioner
	}
	return RolePatient
}
