// Package notifier sends clinic-facing email about bookings over SMTP.
package notifier

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jadavclinic/appointment-app/models"
)

// EmailNotifier sends booking notifications to a single clinic address.
type EmailNotifier struct {
	host       string
	port       int
	user       string
	pass       string
	clinicAddr string
	log        zerolog.Logger
}

// NewEmailNotifierFromEnv builds the notifier from SMTP_HOST, SMTP_PORT,
// EMAIL_USER, EMAIL_PASS and CLINIC_EMAIL.
func NewEmailNotifierFromEnv(log zerolog.Logger) *EmailNotifier {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	return &EmailNotifier{
		host:       os.Getenv("SMTP_HOST"),
		port:       port,
		user:       os.Getenv("EMAIL_USER"),
		pass:       os.Getenv("EMAIL_PASS"),
		clinicAddr: os.Getenv("CLINIC_EMAIL"),
		log:        log,
	}
}

// Send emails the clinic about a new booking. Exactly one attempt is made;
// the caller decides what a failure means.
func (n *EmailNotifier) Send(ctx context.Context, appt *models.Appointment) error {
	subject := fmt.Sprintf("New Appointment: %s with %s", appt.PatientName, appt.Doctor)
	return n.deliver(subject, BookingBody(appt))
}

// SendSummary emails the clinic the day's schedule.
func (n *EmailNotifier) SendSummary(ctx context.Context, date string, appointments []models.Appointment) error {
	subject := fmt.Sprintf("Appointment Schedule for %s", date)
	return n.deliver(subject, SummaryBody(date, appointments))
}

func (n *EmailNotifier) deliver(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.user)
	m.SetHeader("To", n.clinicAddr)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(n.host, n.port, n.user, n.pass)
	if err := d.DialAndSend(m); err != nil {
		return err
	}
	n.log.Info().Str("subject", subject).Msg("email sent to clinic")
	return nil
}

// BookingBody renders the fixed-format notification for one booking.
func BookingBody(appt *models.Appointment) string {
	return fmt.Sprintf(`
		<h2>New Appointment Booking</h2>
		<p><strong>Appointment Details</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Patient Name:</strong> %s</li>
			<li><strong>Contact Number:</strong> %s</li>
			<li><strong>Medical Reason:</strong> %s</li>
			<li><strong>Additional Notes:</strong> %s</li>
		</ul>
		<p>This is an automated message from your clinic appointment system.</p>
	`, appt.Doctor, appt.AppointmentDate, appt.AppointmentTime,
		appt.PatientName, appt.ContactNumber, appt.MedicalReason, appt.AdditionalNotes)
}

// SummaryBody renders the daily schedule email.
func SummaryBody(date string, appointments []models.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Schedule for %s</h2>", date)
	if len(appointments) == 0 {
		b.WriteString("<p>No appointments booked for today.</p>")
		return b.String()
	}
	b.WriteString("<ul>")
	for _, appt := range appointments {
		fmt.Fprintf(&b, "<li>%s — %s with %s (%s, %s)</li>",
			appt.AppointmentTime, appt.PatientName, appt.Doctor,
			appt.MedicalReason, appt.Status)
	}
	b.WriteString("</ul>")
	return b.String()
}
