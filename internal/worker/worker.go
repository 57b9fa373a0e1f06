package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hazelbrook/saffron/internal/service"
)

// Config holds scheduler configuration
type Config struct {
	// WorkerID uniquely identifies this scheduler instance
	WorkerID string

	// SweepInterval is how often to run the inventory sweep
	SweepInterval time.Duration

	// RollupHourUTC is the hour of day (UTC) at which to recompute the
	// previous day's sales rollup
	RollupHourUTC int
}

// Scheduler runs periodic maintenance tasks: the inventory alert sweep
// and the nightly sales rollup for the previous day.
type Scheduler struct {
	config    Config
	analytics service.AnalyticsService
	logger    *slog.Logger
}

// NewScheduler creates a maintenance scheduler.
func NewScheduler(analytics service.AnalyticsService, config Config, logger *slog.Logger) *Scheduler {
	// Set defaults
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}
	if config.SweepInterval == 0 {
		config.SweepInterval = 15 * time.Minute
	}

	return &Scheduler{
		config:    config,
		analytics: analytics,
		logger:    logger,
	}
}

// Start runs the scheduler until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler starting",
		"worker_id", s.config.WorkerID,
		"sweep_interval", s.config.SweepInterval,
		"rollup_hour_utc", s.config.RollupHourUTC,
	)

	sweepTicker := time.NewTicker(s.config.SweepInterval)
	defer sweepTicker.Stop()

	rollupTimer := time.NewTimer(s.untilNextRollup(time.Now().UTC()))
	defer rollupTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler shutting down", "worker_id", s.config.WorkerID)
			return ctx.Err()

		case <-sweepTicker.C:
			s.runSweep(ctx)

		case <-rollupTimer.C:
			s.runRollup(ctx)
			rollupTimer.Reset(s.untilNextRollup(time.Now().UTC()))
		}
	}
}

// untilNextRollup returns the wait until the next rollup hour after now.
func (s *Scheduler) untilNextRollup(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.config.RollupHourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func (s *Scheduler) runSweep(ctx context.Context) {
	alerts, err := s.analytics.SweepInventory(ctx)
	if err != nil {
		s.logger.Error("inventory sweep failed",
			"worker_id", s.config.WorkerID,
			"error", err,
		)
		return
	}
	if len(alerts) > 0 {
		s.logger.Info("inventory sweep opened alerts",
			"worker_id", s.config.WorkerID,
			"alerts", len(alerts),
		)
	}
}

func (s *Scheduler) runRollup(ctx context.Context) {
	// Roll up the day that just ended.
	day := time.Now().UTC().AddDate(0, 0, -1)

	sales, err := s.analytics.RollupDay(ctx, day)
	if err != nil {
		s.logger.Error("daily rollup failed",
			"worker_id", s.config.WorkerID,
			"day", day.Format("2006-01-02"),
			"error", err,
		)
		return
	}

	s.logger.Info("daily rollup completed",
		"worker_id", s.config.WorkerID,
		"day", day.Format("2006-01-02"),
		"orders", sales.OrdersCount,
		"revenue", sales.Revenue.StringFixed(2),
	)
}
