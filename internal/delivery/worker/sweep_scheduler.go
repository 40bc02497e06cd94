// Package worker hosts the scheduled job deliveries.
package worker

import (
	"context"
	"log/slog"
	"time"

	"mesa/config"
	"mesa/internal/delivery"
	"mesa/internal/domain/constants"
	"mesa/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = 24 * time.Hour

// sweepScheduler runs the subscription expiration sweep on a fixed interval.
// The sweep itself is idempotent, so an overlap with a manual trigger or a
// second replica is harmless.
type sweepScheduler struct {
	cfg     *config.Config
	logger  *slog.Logger
	sweepUC usecase.SweepUsecase

	stopCh chan struct{}
}

// SchedulerParams holds dependencies for the sweep scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

// NewSweepScheduler creates the ticker-driven sweep delivery.
func NewSweepScheduler(params SchedulerParams) (delivery.Delivery, error) {
	scheduler := &sweepScheduler{
		cfg:     params.Config,
		logger:  params.Logger,
		sweepUC: params.SweepUC,
		stopCh:  make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(scheduler.stopCh)

			return nil
		},
	})

	return scheduler, nil
}

// Serve blocks, firing one sweep per interval until stopped.
func (s *sweepScheduler) Serve(ctx context.Context) error {
	if s.cfg.Sweep != nil && !s.cfg.Sweep.Enabled {
		s.logger.Info("Sweep scheduler disabled by configuration")

		return nil
	}

	interval := defaultSweepInterval
	if s.cfg.Sweep != nil && s.cfg.Sweep.Interval > 0 {
		interval = s.cfg.Sweep.Interval
	}

	s.logger.Info("Starting sweep scheduler", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			s.logger.Info("Sweep scheduler stopped")

			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *sweepScheduler) runOnce(ctx context.Context) {
	summary, err := s.sweepUC.Run(ctx, constants.SweepTriggerSchedule)
	if err != nil {
		s.logger.Error("Scheduled sweep failed", slog.String("error", err.Error()))

		return
	}

	s.logger.Info("Scheduled sweep completed",
		slog.String("jobID", summary.JobID.String()),
		slog.Int("processed", summary.Processed),
		slog.Int("expired", summary.Expired),
		slog.Int("suspended", summary.Suspended),
		slog.Int("errors", len(summary.Errors)),
	)
}
