package booking

import "time"

// DateLayout is the canonical calendar-date representation used everywhere an
// appointment date crosses a boundary (API, storage, email).
const DateLayout = "2006-01-02"

// ClosedWeekday is the clinic's weekly closing day. The calendar never offers
// it and the server rejects it.
const ClosedWeekday = time.Sunday

// TimeSlots are the half-hour slots spanning the clinic's operating hours.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"17:00", "17:30", "18:00", "18:30", "19:00",
}

// MedicalReasons is the fixed list a patient picks the visit reason from.
var MedicalReasons = []string{
	"Fever", "Cough", "Cold", "Headache", "Body Pain", "Injury", "Other",
}

// IsTimeSlot reports whether t is one of the offered slots.
func IsTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// IsMedicalReason reports whether r is one of the offered reasons.
func IsMedicalReason(r string) bool {
	for _, s := range MedicalReasons {
		if s == r {
			return true
		}
	}
	return false
}

// SelectableDates returns the next days bookable dates starting today,
// skipping the closed weekday. Past dates are excluded by construction.
func SelectableDates(now time.Time, days int) []string {
	dates := make([]string, 0, days)
	day := now
	for len(dates) < days {
		if day.Weekday() != ClosedWeekday {
			dates = append(dates, day.Format(DateLayout))
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}
