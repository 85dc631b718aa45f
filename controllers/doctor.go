package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jadavclinic/appointment-app/models"
)

// GetDoctors returns the clinic's doctor roster.
func GetDoctors(c *fiber.Ctx) error {
	return c.JSON(models.Doctors())
}
