package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadavclinic/appointment-app/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ac *controllers.AppointmentController) {
	appointment := app.Group("/appointments")
	appointment.Get("/", ac.GetAllAppointments)
	appointment.Post("/", ac.CreateAppointment)

	app.Get("/doctors", controllers.GetDoctors)
}
