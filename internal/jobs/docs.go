// Package jobs provides scheduled background tasks for the order platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot do.
//
// # Available Jobs
//
// 1. RiderLivenessJob - Periodically takes riders offline when their last
// location report is older than the configured stale threshold, so manual
// assignment only ever offers riders who are actually reachable.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, "*/1 * * * *", 5*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick; the job never stops
// itself on a transient error.
package jobs
