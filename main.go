package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/jadavclinic/appointment-app/booking"
	"github.com/jadavclinic/appointment-app/controllers"
	"github.com/jadavclinic/appointment-app/cron"
	"github.com/jadavclinic/appointment-app/db"
	"github.com/jadavclinic/appointment-app/notifier"
	"github.com/jadavclinic/appointment-app/redis"
	"github.com/jadavclinic/appointment-app/routes"
	"github.com/jadavclinic/appointment-app/store"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	db.Init()
	db.Migrate()
	redis.InitRedis()

	appointmentStore := store.NewAppointmentStore(db.DB)
	emailNotifier := notifier.NewEmailNotifierFromEnv(zlog.Logger)
	coordinator := booking.NewCoordinator(appointmentStore, emailNotifier, zlog.Logger)
	sessions := booking.NewSessionStore(30 * time.Minute)
	wizard := booking.NewWizard(sessions, coordinator, zlog.Logger)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic appointment service")
	})

	routes.SetupAppointmentRoutes(app, controllers.NewAppointmentController(coordinator, appointmentStore))
	routes.SetupBookingRoutes(app, controllers.NewBookingController(wizard))
	routes.SetupAdminRoutes(app, controllers.NewAdminController(appointmentStore))

	cron.StartCronJobs(appointmentStore, emailNotifier)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		for range ticker.C {
			if removed := sessions.Cleanup(); removed > 0 {
				zlog.Debug().Int("removed", removed).Msg("expired booking sessions cleaned up")
			}
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatal().Err(err).Msg("server stopped")
	}
}
