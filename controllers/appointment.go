package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadavclinic/appointment-app/booking"
	"github.com/jadavclinic/appointment-app/store"
	"github.com/jadavclinic/appointment-app/utils"
)

// AppointmentController serves the direct (non-wizard) appointment API.
type AppointmentController struct {
	Coordinator *booking.Coordinator
	Store       *store.AppointmentStore
}

func NewAppointmentController(coordinator *booking.Coordinator, st *store.AppointmentStore) *AppointmentController {
	return &AppointmentController{Coordinator: coordinator, Store: st}
}

// CreateAppointment godoc
// @Summary Book a new appointment
// @Description Validates the draft, saves the record and notifies the clinic
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body booking.Draft true "Appointment draft"
// @Success 201 {object} booking.Result
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} booking.Result
// @Router /appointments [post]
func (ac *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var draft booking.Draft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	result := ac.Coordinator.Create(c.Context(), draft)
	if result.Success {
		// 201 covers the saved-but-not-notified outcome too: the
		// booking stands either way.
		return c.Status(fiber.StatusCreated).JSON(result)
	}
	if result.ValidationError() != nil {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(result)
}

// GetAllAppointments godoc
// @Summary List appointments
// @Description List appointments ordered by date then time, optionally filtered by doctor
// @Tags appointments
// @Produce json
// @Param doctor query string false "Doctor name"
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func (ac *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := ac.Store.List(c.Context(), c.Query("doctor"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}
