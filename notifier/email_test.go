package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jadavclinic/appointment-app/models"
)

func TestBookingBodyContainsEveryField(t *testing.T) {
	appt := &models.Appointment{
		ID:              "abc-1",
		Doctor:          "Dr. Jadav Apexa",
		AppointmentDate: "2026-09-10",
		AppointmentTime: "10:30",
		PatientName:     "Asha Patel",
		ContactNumber:   "9876543210",
		MedicalReason:   "Fever",
		AdditionalNotes: "None",
	}

	body := BookingBody(appt)

	for _, want := range []string{
		"Dr. Jadav Apexa", "2026-09-10", "10:30",
		"Asha Patel", "9876543210", "Fever", "None",
	} {
		assert.Contains(t, body, want)
	}
	assert.Contains(t, body, "New Appointment Booking")
}

func TestSummaryBody(t *testing.T) {
	empty := SummaryBody("2026-09-10", nil)
	assert.Contains(t, empty, "No appointments booked")

	body := SummaryBody("2026-09-10", []models.Appointment{
		{
			Doctor:          "Dr. Jadav Pruthaviraj",
			AppointmentTime: "09:00",
			PatientName:     "Ravi",
			MedicalReason:   "Injury",
			Status:          models.StatusPending,
		},
	})
	assert.Contains(t, body, "Schedule for 2026-09-10")
	assert.Contains(t, body, "09:00")
	assert.Contains(t, body, "Ravi")
	assert.Contains(t, body, "Dr. Jadav Pruthaviraj")
}
