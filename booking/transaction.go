package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jadavclinic/appointment-app/models"
)

// RecordStore persists appointment records.
type RecordStore interface {
	// Insert stores a new record and returns its assigned id.
	Insert(ctx context.Context, appt *models.Appointment) (string, error)
	// List returns records ordered by date then time, optionally filtered
	// by doctor (empty string means all).
	List(ctx context.Context, doctor string) ([]models.Appointment, error)
}

// Notifier delivers a booking notification to the clinic.
type Notifier interface {
	Send(ctx context.Context, appt *models.Appointment) error
}

// Result is the composite outcome of one creation attempt.
//
// Success is true whenever the record was persisted, even if the
// notification step failed afterwards: the patient-visible contract is "your
// slot is reserved", not "staff has been emailed".
type Result struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	AppointmentID     string `json:"appointment_id,omitempty"`
	Error             string `json:"error,omitempty"`
	NotificationError string `json:"notification_error,omitempty"`

	validationErr *ValidationError
}

// ValidationError returns the validation failure behind a rejected draft, or
// nil when the draft reached the store.
func (r Result) ValidationError() *ValidationError {
	return r.validationErr
}

// Coordinator runs the appointment creation transaction: persist first,
// notify second, never the reverse. The two steps are deliberately not
// atomic with each other and each is attempted exactly once.
type Coordinator struct {
	store    RecordStore
	notifier Notifier
	log      zerolog.Logger
}

// NewCoordinator wires the transaction to its collaborators.
func NewCoordinator(store RecordStore, notifier Notifier, log zerolog.Logger) *Coordinator {
	return &Coordinator{store: store, notifier: notifier, log: log}
}

// Create validates the draft, persists the record and then attempts the
// notification. Nothing propagates as a fault past this boundary; every
// failure mode comes back as a typed Result.
func (c *Coordinator) Create(ctx context.Context, draft Draft) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("appointment creation panicked")
			result = Result{
				Success: false,
				Message: "Failed to process appointment",
				Error:   fmt.Sprintf("unexpected error: %v", r),
			}
		}
	}()

	if err := draft.Validate(time.Now()); err != nil {
		var vErr *ValidationError
		if v, ok := err.(*ValidationError); ok {
			vErr = v
		}
		return Result{
			Success:       false,
			Message:       "Invalid appointment request",
			Error:         err.Error(),
			validationErr: vErr,
		}
	}

	appt := draft.Record()

	id, err := c.store.Insert(ctx, appt)
	if err != nil {
		c.log.Error().Err(err).
			Str("doctor", draft.Doctor).
			Str("date", draft.Date).
			Msg("failed to save appointment")
		return Result{
			Success: false,
			Message: "Failed to create appointment",
			Error:   err.Error(),
		}
	}
	appt.ID = id

	if err := c.notifier.Send(ctx, appt); err != nil {
		// The booking stands; the clinic just has to find out another way.
		c.log.Warn().Err(err).
			Str("appointment_id", id).
			Msg("appointment saved but notification failed")
		return Result{
			Success:           true,
			Message:           "Appointment created but failed to send email notification",
			AppointmentID:     id,
			NotificationError: err.Error(),
		}
	}

	c.log.Info().
		Str("appointment_id", id).
		Str("doctor", appt.Doctor).
		Str("date", appt.AppointmentDate).
		Str("time", appt.AppointmentTime).
		Msg("appointment created")
	return Result{
		Success:       true,
		Message:       "Appointment created successfully",
		AppointmentID: id,
	}
}
