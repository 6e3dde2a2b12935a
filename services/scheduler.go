// services/scheduler.go
package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"erpdash/config"
)

// Scheduler drives the refresher on the configured cadence: an optional
// hourly tick plus a daily report run at a fixed wall-clock time. Both
// entries funnel into the same TryRefresh, so when they land in the same
// window the loser of the Idle/Running race is coalesced into a no-op.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger

	running atomic.Bool
}

func NewScheduler(cfg config.ScheduleConfig, refresher *Refresher, log *zap.Logger) (*Scheduler, error) {
	c := cron.New()
	trigger := func() { refresher.TryRefresh(context.Background()) }

	if cfg.HourlyRefresh {
		if _, err := c.AddFunc("0 * * * *", trigger); err != nil {
			return nil, fmt.Errorf("failed to schedule hourly refresh: %w", err)
		}
	}

	daily := fmt.Sprintf("%d %d * * *", cfg.DailyMinute, cfg.DailyHour)
	if _, err := c.AddFunc(daily, trigger); err != nil {
		return nil, fmt.Errorf("failed to schedule daily report at %s: %w", cfg.DailyReportTime, err)
	}

	log.Info("jobs scheduled",
		zap.Bool("hourly_refresh", cfg.HourlyRefresh),
		zap.String("daily_report_time", cfg.DailyReportTime),
	)
	return &Scheduler{cron: c, log: log}, nil
}

// Start begins firing scheduled triggers in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.running.Store(true)
	s.log.Info("scheduler started")
}

// Stop prevents further triggers and waits for an in-flight cycle to
// finish. A running refresh is never aborted mid-cycle.
func (s *Scheduler) Stop() {
	s.running.Store(false)
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// Running reports whether the scheduler is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// EntryCount returns how many schedule entries are registered.
func (s *Scheduler) EntryCount() int {
	return len(s.cron.Entries())
}
