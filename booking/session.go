package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one patient's booking dialog. All access goes through the
// Wizard, which holds the session mutex across a step.
type Session struct {
	ID    string
	State State
	Draft Draft

	// Set once a submission finishes.
	AppointmentID     string
	NotificationError string

	StartedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

func newSession(doctor string) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		State:     StateSelectingSlot,
		Draft:     Draft{Doctor: doctor},
		StartedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}

// View is a copy of the session's visible fields, safe to render.
type View struct {
	SessionID         string `json:"session_id"`
	State             State  `json:"state"`
	Draft             Draft  `json:"draft"`
	AppointmentID     string `json:"appointment_id,omitempty"`
	NotificationError string `json:"notification_error,omitempty"`
}

// Snapshot returns a consistent copy of the session for display.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		SessionID:         s.ID,
		State:             s.State,
		Draft:             s.Draft,
		AppointmentID:     s.AppointmentID,
		NotificationError: s.NotificationError,
	}
}

// IsExpired checks if the session has been idle longer than timeout.
func (s *Session) IsExpired(timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.UpdatedAt) > timeout
}

// SessionStore keeps active booking sessions in memory, keyed by session id.
type SessionStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	timeout  time.Duration
}

// NewSessionStore creates a session store with the given idle timeout.
func NewSessionStore(timeout time.Duration) *SessionStore {
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		timeout:  timeout,
	}
}

// Create opens a new session for a doctor.
func (ss *SessionStore) Create(doctor string) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session := newSession(doctor)
	ss.sessions[session.ID] = session
	return session
}

// Get returns the session with the given id, or nil.
func (ss *SessionStore) Get(id string) *Session {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	session := ss.sessions[id]
	if session == nil {
		return nil
	}
	return session
}

// Delete removes a session, discarding its draft.
func (ss *SessionStore) Delete(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, id)
}

// Cleanup removes expired sessions and returns how many were dropped.
func (ss *SessionStore) Cleanup() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	removed := 0
	for id, session := range ss.sessions {
		if session.IsExpired(ss.timeout) {
			delete(ss.sessions, id)
			removed++
		}
	}
	return removed
}
