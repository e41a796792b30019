// Package jobs provides scheduled background tasks for the progress tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DashboardSnapshotJob - Logs the order dashboard (counts by status and
// average progress) on a configurable schedule, "@every 1m" by default
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dashboardHandler, cfg.DashboardSnapshotCron, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the robfig/cron syntax with a leading seconds field, or the
// "@every <duration>" and "@hourly" style descriptors.
//
// # Error Handling
//
// - A failed snapshot is logged and the next run proceeds normally
// - An invalid schedule fails StartAll
package jobs
