package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jadavclinic/appointment-app/models"
)

var (
	// ErrSessionNotFound means the session id is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found")
	// ErrInvalidTransition means the requested step is not legal from the
	// session's current state.
	ErrInvalidTransition = errors.New("invalid booking step for current state")
	// ErrSubmissionInFlight means a confirm was requested while a prior
	// submission is still outstanding.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

// Wizard drives booking sessions through the dialog states. It owns the
// per-step field guards; the FSM owns the edges.
type Wizard struct {
	fsm         *FSM
	sessions    *SessionStore
	coordinator *Coordinator
	log         zerolog.Logger
}

// NewWizard creates a wizard over the given session store and coordinator.
func NewWizard(sessions *SessionStore, coordinator *Coordinator, log zerolog.Logger) *Wizard {
	return &Wizard{
		fsm:         NewFSM(),
		sessions:    sessions,
		coordinator: coordinator,
		log:         log,
	}
}

// Open starts a new dialog for a doctor and returns its session.
func (w *Wizard) Open(doctor string) (*Session, error) {
	if !models.IsKnownDoctor(doctor) {
		return nil, &ValidationError{Field: "doctor", Reason: "is not on the clinic roster"}
	}
	session := w.sessions.Create(doctor)
	w.log.Debug().Str("session_id", session.ID).Str("doctor", doctor).Msg("booking session opened")
	return session, nil
}

// Get returns a session for review display.
func (w *Wizard) Get(id string) (*Session, error) {
	session := w.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SelectSlot records date and time and advances to the details step. Both
// fields are validated here so an invalid option can never be carried
// forward, mirroring the calendar that does not offer them.
func (w *Wizard) SelectSlot(id, date, slot string) (*Session, error) {
	session := w.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State != StateSelectingSlot {
		return nil, ErrInvalidTransition
	}
	if err := ValidateDate(date, time.Now()); err != nil {
		return nil, err
	}
	if !IsTimeSlot(slot) {
		return nil, &ValidationError{Field: "appointment_time", Reason: "is not an offered time slot"}
	}

	session.Draft.Date = date
	session.Draft.Time = slot
	session.State = StateEnteringDetails
	session.touch()
	return session, nil
}

// EnterDetails records the patient's identity and reason and advances to the
// review step.
func (w *Wizard) EnterDetails(id, name, contact, reason, notes string) (*Session, error) {
	session := w.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.State != StateEnteringDetails {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "patient_name", Reason: "is required"}
	}
	if strings.TrimSpace(contact) == "" {
		return nil, &ValidationError{Field: "contact_number", Reason: "is required"}
	}
	if !IsMedicalReason(reason) {
		return nil, &ValidationError{Field: "medical_reason", Reason: "is not a known reason"}
	}

	session.Draft.PatientName = name
	session.Draft.ContactNumber = contact
	session.Draft.MedicalReason = reason
	session.Draft.AdditionalNotes = notes
	session.State = StateReviewing
	session.touch()
	return session, nil
}

// Back returns to the previous step, keeping every draft field.
func (w *Wizard) Back(id string) (*Session, error) {
	session := w.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	prev, ok := back(session.State)
	if !ok {
		return nil, ErrInvalidTransition
	}
	session.State = prev
	session.touch()
	return session, nil
}

// Confirm submits the draft. It is legal only from the reviewing state (or
// failed, for a retry); a session already in submitting rejects a second
// confirm, which is the workflow's re-entrancy guard.
func (w *Wizard) Confirm(ctx context.Context, id string) (*Session, Result, error) {
	session := w.sessions.Get(id)
	if session == nil {
		return nil, Result{}, ErrSessionNotFound
	}

	session.mu.Lock()
	if session.State == StateSubmitting {
		session.mu.Unlock()
		return nil, Result{}, ErrSubmissionInFlight
	}
	if !w.fsm.CanTransition(session.State, StateSubmitting) {
		session.mu.Unlock()
		return nil, Result{}, ErrInvalidTransition
	}
	session.State = StateSubmitting
	draft := session.Draft
	session.touch()
	session.mu.Unlock()

	result := w.coordinator.Create(ctx, draft)

	session.mu.Lock()
	defer session.mu.Unlock()
	if result.Success {
		session.State = StateCompleted
		session.AppointmentID = result.AppointmentID
		session.NotificationError = result.NotificationError
	} else {
		// Draft stays in place so the patient can retry without
		// re-entering anything.
		session.State = StateFailed
	}
	session.touch()
	return session, result, nil
}

// Close ends the dialog from any state and discards the draft.
func (w *Wizard) Close(id string) {
	w.sessions.Delete(id)
}
