package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jadavclinic/appointment-app/booking"
	"github.com/jadavclinic/appointment-app/models"
	"github.com/jadavclinic/appointment-app/redis"
	"github.com/jadavclinic/appointment-app/store"
	"github.com/jadavclinic/appointment-app/utils"
)

const (
	overviewCacheKey = "admin:overview"
	overviewCacheTTL = 30 * time.Second
)

// AdminController serves the clinic staff dashboard.
type AdminController struct {
	Store *store.AppointmentStore
}

func NewAdminController(st *store.AppointmentStore) *AdminController {
	return &AdminController{Store: st}
}

type overviewStats struct {
	TotalAppointments int64     `json:"total_appointments"`
	TodayCount        int64     `json:"today_count"`
	UpcomingCount     int64     `json:"upcoming_count"`
	PendingCount      int64     `json:"pending_count"`
	ConfirmedCount    int64     `json:"confirmed_count"`
	CancelledCount    int64     `json:"cancelled_count"`
	ActiveDoctors     int       `json:"active_doctors"`
	LastUpdated       time.Time `json:"last_updated"`
}

// GetOverview returns aggregate booking statistics. The result is cached in
// redis for a short window when a client is configured.
func (a *AdminController) GetOverview(c *fiber.Ctx) error {
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, overviewCacheKey).Result(); err == nil {
			var stats overviewStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return c.JSON(stats)
			}
		}
	}

	ctx := c.Context()
	today := time.Now().Format(booking.DateLayout)
	var stats overviewStats
	var err error

	if stats.TotalAppointments, err = a.Store.Count(ctx); err != nil {
		return overviewError(c, err)
	}
	if stats.TodayCount, err = a.Store.CountOnDate(ctx, today); err != nil {
		return overviewError(c, err)
	}
	if stats.UpcomingCount, err = a.Store.CountAfterDate(ctx, today); err != nil {
		return overviewError(c, err)
	}
	if stats.PendingCount, err = a.Store.CountByStatus(ctx, models.StatusPending); err != nil {
		return overviewError(c, err)
	}
	if stats.ConfirmedCount, err = a.Store.CountByStatus(ctx, models.StatusConfirmed); err != nil {
		return overviewError(c, err)
	}
	if stats.CancelledCount, err = a.Store.CountByStatus(ctx, models.StatusCancelled); err != nil {
		return overviewError(c, err)
	}
	doctors, err := a.Store.DistinctDoctors(ctx)
	if err != nil {
		return overviewError(c, err)
	}
	stats.ActiveDoctors = len(doctors)
	stats.LastUpdated = time.Now()

	if redis.Client != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := redis.Client.Set(redis.Ctx, overviewCacheKey, payload, overviewCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache dashboard overview")
			}
		}
	}
	return c.JSON(stats)
}

// GetAppointments returns the full ordered appointment list.
func (a *AdminController) GetAppointments(c *fiber.Ctx) error {
	appointments, err := a.Store.List(c.Context(), c.Query("doctor"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

type doctorSummary struct {
	models.Doctor
	AppointmentCount int64 `json:"appointment_count"`
}

// GetDoctors returns the roster with per-doctor appointment counts.
func (a *AdminController) GetDoctors(c *fiber.Ctx) error {
	summaries := make([]doctorSummary, 0, len(models.Doctors()))
	for _, d := range models.Doctors() {
		count, err := a.Store.CountByDoctor(c.Context(), d.Name)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch doctor statistics",
				Error:   err.Error(),
			})
		}
		summaries = append(summaries, doctorSummary{Doctor: d, AppointmentCount: count})
	}
	return c.JSON(summaries)
}

func overviewError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Failed to compute dashboard overview",
		Error:   err.Error(),
	})
}
