package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadavclinic/appointment-app/controllers"
)

// SetupAdminRoutes configures the staff dashboard routes
func SetupAdminRoutes(app *fiber.App, a *controllers.AdminController) {
	admin := app.Group("/admin")
	admin.Get("/overview", a.GetOverview)
	admin.Get("/appointments", a.GetAppointments)
	admin.Get("/doctors", a.GetDoctors)
}
