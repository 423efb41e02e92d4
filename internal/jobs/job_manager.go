package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	invariantAuditJob *InvariantAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	snapshot ports.ChangeSnapshot,
	evaluator ChangeEvaluator,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		invariantAuditJob: NewInvariantAuditJob(snapshot, evaluator, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.invariantAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start invariant audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invariantAuditJob.Stop()
}
