package db

import (
	"github.com/rs/zerolog/log"

	"github.com/jadavclinic/appointment-app/models"
)

// Migrate runs AutoMigrate for the appointments table. Called explicitly on
// startup; the schema is a single table, so there is no migration tooling.
func Migrate() {
	if err := DB.AutoMigrate(&models.Appointment{}); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")
}
