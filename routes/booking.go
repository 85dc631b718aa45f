package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadavclinic/appointment-app/controllers"
)

// SetupBookingRoutes configures the booking wizard routes
func SetupBookingRoutes(app *fiber.App, bc *controllers.BookingController) {
	app.Get("/booking/options", bc.GetBookingOptions)

	bookings := app.Group("/bookings")
	bookings.Post("/", bc.OpenSession)
	bookings.Get("/:id", bc.GetSession)
	bookings.Put("/:id/slot", bc.SelectSlot)
	bookings.Put("/:id/details", bc.EnterDetails)
	bookings.Post("/:id/back", bc.Back)
	bookings.Post("/:id/confirm", bc.Confirm)
	bookings.Delete("/:id", bc.CloseSession)
}
