package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/jadavclinic/appointment-app/booking"
	"github.com/jadavclinic/appointment-app/notifier"
	"github.com/jadavclinic/appointment-app/store"
)

// StartCronJobs starts the scheduler that mails the clinic its daily
// schedule every morning.
func StartCronJobs(st *store.AppointmentStore, n *notifier.EmailNotifier) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 7 * * *", func() {
		sendDailySchedule(st, n)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to add cron job")
	}
	c.Start()
	log.Info().Msg("cron scheduler started for daily schedule summary")
	return c
}

func sendDailySchedule(st *store.AppointmentStore, n *notifier.EmailNotifier) {
	ctx := context.Background()
	today := time.Now().Format(booking.DateLayout)

	appointments, err := st.ListOnDate(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch today's appointments for summary")
		return
	}

	if err := n.SendSummary(ctx, today, appointments); err != nil {
		log.Error().Err(err).Str("date", today).Msg("failed to send schedule summary")
		return
	}
	log.Info().Str("date", today).Int("appointments", len(appointments)).Msg("schedule summary sent")
}
