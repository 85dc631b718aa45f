package models

// Doctor is a roster entry. The clinic has a fixed set of doctors, so the
// roster lives in code rather than in a table.
type Doctor struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
	Phone      string `json:"phone"`
}

var doctors = []Doctor{
	{
		Name:       "Dr. Jadav Pruthaviraj",
		Specialty:  "Physiotherapist",
		Experience: "4 Years",
		Phone:      "+91 9714234046",
	},
	{
		Name:       "Dr. Jadav Apexa",
		Specialty:  "BHMS Doctor",
		Experience: "6 Years",
		Phone:      "+91 8866924046",
	},
}

// Doctors returns the clinic roster.
func Doctors() []Doctor {
	out := make([]Doctor, len(doctors))
	copy(out, doctors)
	return out
}

// IsKnownDoctor reports whether name is on the roster.
func IsKnownDoctor(name string) bool {
	for _, d := range doctors {
		if d.Name == name {
			return true
		}
	}
	return false
}
