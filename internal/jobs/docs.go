// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OrderProgressJob advances idle orders one status per run (placed, confirmed, preparing,
// out-for-delivery, delivered) so the demo app shows orders moving without an operator.
// It is disabled unless ORDER_PROGRESS_ENABLED is set.
//
// # Usage
//
//	job := jobs.NewOrderProgressJob(&advanceHandler, "*/30 * * * * *", time.Minute, 50, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed run is logged and retried on the next tick
//   - A failed start stops the jobs that are already running
package jobs
