// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. InvariantAuditJob - Replays every product and order through the
// invariant watchers, as a backstop for missed change notifications
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(changeFeed, supervisor, cfg.AuditSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds). The audit runs
// once a minute unless AUDIT_SCHEDULE says otherwise.
//
// # Error Handling
//
// A failed snapshot is logged and the next run tries again. Violations are
// reported through the evaluator; the job itself only counts them.
package jobs
