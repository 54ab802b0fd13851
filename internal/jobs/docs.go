// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so schedules look like
// "0 */5 * * * *".
//
// # Available Jobs
//
// RouteStatisticsJob recomputes totalTripsCompleted and averageActualDuration of every route
// from its completed trips. The same refresh is available on demand through
// POST /api/v1/routes/refresh-statistics.
//
// # Usage
//
//	job := jobs.NewRouteStatisticsJob(handler, cfg.RouteStatsSchedule, metrics, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged, counted in logistics_job_runs_total and retried on the next tick.
// Overlapping runs are skipped.
package jobs
