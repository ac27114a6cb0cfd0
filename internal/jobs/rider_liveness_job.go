package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderLivenessJob periodically sweeps the available-rider pool and takes
// offline any rider whose last location report is older than the stale
// threshold. A rider who stops reporting keeps their current delivery; they
// only stop receiving new assignments.
type RiderLivenessJob struct {
	handler    commands.SweepStaleRidersCommandHandler
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRiderLivenessJob creates the liveness sweep job. schedule is a standard
// five-field cron expression; staleAfter is the silence threshold after which
// a rider is considered gone.
func NewRiderLivenessJob(
	handler commands.SweepStaleRidersCommandHandler,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *RiderLivenessJob {
	return &RiderLivenessJob{
		handler:    handler,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "rider_liveness_job"),
	}
}

// Start begins the liveness sweep on the configured schedule.
func (j *RiderLivenessJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewSweepStaleRidersCommand(j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "rider liveness sweep misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "rider liveness sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "rider liveness job started",
		"schedule", j.schedule, "stale_after", j.staleAfter.String())
	return nil
}

// Stop stops the liveness sweep.
func (j *RiderLivenessJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "rider liveness job stopped")
}
