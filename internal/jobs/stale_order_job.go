package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically cancels Pending orders that have sat
// unprocessed longer than the configured TTL. Orders abandoned before
// checkout would otherwise stay Pending forever.
type StaleOrderJob struct {
	handler  commands.ExpireStaleOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	ttl      time.Duration
	logger   *slog.Logger
}

// NewStaleOrderJob creates a job that expires stale Pending orders on the
// given cron schedule. The ttl is how long an order may stay Pending
// before the sweep cancels it.
func NewStaleOrderJob(
	handler commands.ExpireStaleOrdersCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		ttl:      ttl,
		logger:   logger.With("component", "stale_order_job"),
	}
}

// Start schedules the sweep. Each run issues one ExpireStaleOrdersCommand
// with a cutoff of now minus the TTL.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStaleOrdersCommand(time.Now().Add(-j.ttl))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build expire command", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started",
		"schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
