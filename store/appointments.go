// Package store is the GORM-backed record store for appointments.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/jadavclinic/appointment-app/models"
)

// AppointmentStore persists and queries appointment records.
type AppointmentStore struct {
	db *gorm.DB
}

// NewAppointmentStore creates a store over the given DB handle.
func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// Insert stores a new appointment and returns its assigned id.
func (s *AppointmentStore) Insert(ctx context.Context, appt *models.Appointment) (string, error) {
	if err := s.db.WithContext(ctx).Create(appt).Error; err != nil {
		return "", err
	}
	return appt.ID, nil
}

// List returns appointments ordered by date then time. A non-empty doctor
// restricts the result to that doctor.
func (s *AppointmentStore) List(ctx context.Context, doctor string) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	q := s.db.WithContext(ctx).
		Order("appointment_date asc").
		Order("appointment_time asc")
	if doctor != "" {
		q = q.Where("doctor = ?", doctor)
	}
	err := q.Find(&appointments).Error
	return appointments, err
}

// ListOnDate returns the appointments for a single calendar date, ordered by
// time. Used by the daily schedule summary.
func (s *AppointmentStore) ListOnDate(ctx context.Context, date string) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	err := s.db.WithContext(ctx).
		Where("appointment_date = ?", date).
		Order("appointment_time asc").
		Find(&appointments).Error
	return appointments, err
}

// Count returns the total number of appointments.
func (s *AppointmentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).Count(&n).Error
	return n, err
}

// CountByStatus returns the number of appointments with the given status.
func (s *AppointmentStore) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}

// CountOnDate returns the number of appointments on a calendar date.
func (s *AppointmentStore) CountOnDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("appointment_date = ?", date).Count(&n).Error
	return n, err
}

// CountAfterDate returns the number of appointments strictly after a date.
func (s *AppointmentStore) CountAfterDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("appointment_date > ?", date).Count(&n).Error
	return n, err
}

// DistinctDoctors returns the doctors that have at least one appointment.
func (s *AppointmentStore) DistinctDoctors(ctx context.Context) ([]string, error) {
	doctors := make([]string, 0)
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Distinct("doctor").Order("doctor asc").Pluck("doctor", &doctors).Error
	return doctors, err
}

// CountByDoctor returns the number of appointments for one doctor.
func (s *AppointmentStore) CountByDoctor(ctx context.Context, doctor string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("doctor = ?", doctor).Count(&n).Error
	return n, err
}
