// Package jobs runs background tasks on a cron schedule.
package jobs

import (
	"context"

	"slots_backend/internal/service"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler keeps the leaderboard cache warm so the first request after a
// TTL expiry does not pay for the ledger aggregate.
type Scheduler struct {
	cron     *cron.Cron
	slotServ service.SlotService
}

func NewScheduler(slotServ service.SlotService) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		slotServ: slotServ,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	_, err := s.cron.AddFunc("*/2 * * * *", func() {
		if _, err := s.slotServ.Leaderboard(ctx, 7); err != nil {
			log.WithError(err).Error("leaderboard cache warm failed")
		}
	})
	if err != nil {
		log.WithError(err).Error("failed to schedule leaderboard warm")
		return
	}

	s.cron.Start()
	log.Info("scheduler started")
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info("scheduler stopped")
}
