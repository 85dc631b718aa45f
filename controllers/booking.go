package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jadavclinic/appointment-app/booking"
	"github.com/jadavclinic/appointment-app/models"
	"github.com/jadavclinic/appointment-app/utils"
)

// BookingController serves the step-by-step booking wizard API.
type BookingController struct {
	Wizard *booking.Wizard
}

func NewBookingController(wizard *booking.Wizard) *BookingController {
	return &BookingController{Wizard: wizard}
}

// GetBookingOptions returns what the wizard may offer: selectable dates
// (never past, never the closed weekday), time slots and reasons.
func (bc *BookingController) GetBookingOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"doctors":         models.Doctors(),
		"dates":           booking.SelectableDates(time.Now(), 30),
		"time_slots":      booking.TimeSlots,
		"medical_reasons": booking.MedicalReasons,
	})
}

// OpenSession starts a booking dialog for a doctor.
func (bc *BookingController) OpenSession(c *fiber.Ctx) error {
	var body struct {
		Doctor string `json:"doctor"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	session, err := bc.Wizard.Open(body.Doctor)
	if err != nil {
		return bookingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session.Snapshot())
}

// GetSession returns the session for the review step.
func (bc *BookingController) GetSession(c *fiber.Ctx) error {
	session, err := bc.Wizard.Get(c.Params("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(session.Snapshot())
}

// SelectSlot records date and time and moves the dialog to the details step.
func (bc *BookingController) SelectSlot(c *fiber.Ctx) error {
	var body struct {
		Date string `json:"appointment_date"`
		Time string `json:"appointment_time"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	session, err := bc.Wizard.SelectSlot(c.Params("id"), body.Date, body.Time)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(session.Snapshot())
}

// EnterDetails records the patient's details and moves to the review step.
func (bc *BookingController) EnterDetails(c *fiber.Ctx) error {
	var body struct {
		PatientName     string `json:"patient_name"`
		ContactNumber   string `json:"contact_number"`
		MedicalReason   string `json:"medical_reason"`
		AdditionalNotes string `json:"additional_notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	session, err := bc.Wizard.EnterDetails(c.Params("id"),
		body.PatientName, body.ContactNumber, body.MedicalReason, body.AdditionalNotes)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(session.Snapshot())
}

// Back returns to the previous wizard step, keeping the draft.
func (bc *BookingController) Back(c *fiber.Ctx) error {
	session, err := bc.Wizard.Back(c.Params("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(session.Snapshot())
}

// Confirm submits the draft through the creation transaction.
func (bc *BookingController) Confirm(c *fiber.Ctx) error {
	session, result, err := bc.Wizard.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		return bookingError(c, err)
	}
	status := fiber.StatusCreated
	if !result.Success {
		status = fiber.StatusInternalServerError
		if result.ValidationError() != nil {
			status = fiber.StatusBadRequest
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"session": session.Snapshot(),
		"result":  result,
	})
}

// CloseSession cancels the dialog and discards the draft.
func (bc *BookingController) CloseSession(c *fiber.Ctx) error {
	bc.Wizard.Close(c.Params("id"))
	return c.Status(fiber.StatusOK).JSON(utils.MessageResponse{
		Message: "Booking session closed",
	})
}

func bookingError(c *fiber.Ctx, err error) error {
	var vErr *booking.ValidationError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking session not found",
			Error:   err.Error(),
		})
	case errors.Is(err, booking.ErrSubmissionInFlight):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "A submission is already in progress",
			Error:   err.Error(),
		})
	case errors.Is(err, booking.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Step not allowed from the current state",
			Error:   err.Error(),
		})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking data",
			Error:   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Booking step failed",
			Error:   err.Error(),
		})
	}
}
