package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/jadavclinic/appointment-app/models"
)

// NotesNone is stored when the patient leaves the notes field empty.
const NotesNone = "None"

// Draft holds one booking's data while the patient is still filling the
// wizard. It is discarded on close and converted to a record on submission.
type Draft struct {
	Doctor          string `json:"doctor"`
	Date            string `json:"appointment_date"`
	Time            string `json:"appointment_time"`
	PatientName     string `json:"patient_name"`
	ContactNumber   string `json:"contact_number"`
	MedicalReason   string `json:"medical_reason"`
	AdditionalNotes string `json:"additional_notes"`
}

// ValidationError reports a draft field that fails boundary validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateDate checks the canonical format, rejects past dates and the
// clinic's closed weekday.
func ValidateDate(date string, now time.Time) error {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return &ValidationError{Field: "appointment_date", Reason: "must be a YYYY-MM-DD date"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return &ValidationError{Field: "appointment_date", Reason: "must not be in the past"}
	}
	if d.Weekday() == ClosedWeekday {
		return &ValidationError{Field: "appointment_date", Reason: "clinic is closed on " + ClosedWeekday.String()}
	}
	return nil
}

// Validate re-checks every required field. Client-side checks are not trusted
// as the only gate, so this runs again inside the creation transaction.
func (d Draft) Validate(now time.Time) error {
	if strings.TrimSpace(d.Doctor) == "" {
		return &ValidationError{Field: "doctor", Reason: "is required"}
	}
	if !models.IsKnownDoctor(d.Doctor) {
		return &ValidationError{Field: "doctor", Reason: "is not on the clinic roster"}
	}
	if strings.TrimSpace(d.Date) == "" {
		return &ValidationError{Field: "appointment_date", Reason: "is required"}
	}
	if err := ValidateDate(d.Date, now); err != nil {
		return err
	}
	if strings.TrimSpace(d.Time) == "" {
		return &ValidationError{Field: "appointment_time", Reason: "is required"}
	}
	if !IsTimeSlot(d.Time) {
		return &ValidationError{Field: "appointment_time", Reason: "is not an offered time slot"}
	}
	if strings.TrimSpace(d.PatientName) == "" {
		return &ValidationError{Field: "patient_name", Reason: "is required"}
	}
	if strings.TrimSpace(d.ContactNumber) == "" {
		return &ValidationError{Field: "contact_number", Reason: "is required"}
	}
	if strings.TrimSpace(d.MedicalReason) == "" {
		return &ValidationError{Field: "medical_reason", Reason: "is required"}
	}
	if !IsMedicalReason(d.MedicalReason) {
		return &ValidationError{Field: "medical_reason", Reason: "is not a known reason"}
	}
	return nil
}

// Record converts a validated draft into a new appointment record. Status and
// id are filled in at persistence time.
func (d Draft) Record() *models.Appointment {
	notes := strings.TrimSpace(d.AdditionalNotes)
	if notes == "" {
		notes = NotesNone
	}
	return &models.Appointment{
		Doctor:          d.Doctor,
		AppointmentDate: d.Date,
		AppointmentTime: d.Time,
		PatientName:     d.PatientName,
		ContactNumber:   d.ContactNumber,
		MedicalReason:   d.MedicalReason,
		AdditionalNotes: notes,
		Status:          models.StatusPending,
	}
}
