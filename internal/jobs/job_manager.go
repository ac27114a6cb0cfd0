package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	riderLivenessJob *RiderLivenessJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepStaleRidersHandler commands.SweepStaleRidersCommandHandler,
	livenessSchedule string,
	riderStaleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		riderLivenessJob: NewRiderLivenessJob(sweepStaleRidersHandler, livenessSchedule, riderStaleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.riderLivenessJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider liveness job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.riderLivenessJob.Stop()
}
