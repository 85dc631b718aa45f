package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked clinic visit. AppointmentDate is a canonical
// calendar date ("2006-01-02"), AppointmentTime a half-hour slot ("15:04").
type Appointment struct {
	ID              string            `json:"id" gorm:"primaryKey;size:36"`
	Doctor          string            `json:"doctor" gorm:"index"`
	AppointmentDate string            `json:"appointment_date" gorm:"index"`
	AppointmentTime string            `json:"appointment_time"`
	PatientName     string            `json:"patient_name"`
	ContactNumber   string            `json:"contact_number"`
	MedicalReason   string            `json:"medical_reason"`
	AdditionalNotes string            `json:"additional_notes"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
