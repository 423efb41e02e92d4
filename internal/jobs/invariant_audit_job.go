package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at second 0 of every minute.
const DefaultAuditSchedule = "0 * * * * *"

// ChangeEvaluator checks one change and returns the alerts it raised.
type ChangeEvaluator interface {
	Evaluate(ctx context.Context, change ports.Change) []ports.Alert
}

// InvariantAuditJob replays the current state of every product and order
// through the watchers on a schedule. It catches violations whose live
// notification was missed, for example while the listener was reconnecting.
// Orders are replayed as inserts, so the payment check runs against current
// product prices.
type InvariantAuditJob struct {
	snapshot  ports.ChangeSnapshot
	evaluator ChangeEvaluator
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger

	// running keeps sweeps from overlapping when one outlasts the schedule.
	running sync.Mutex
}

// NewInvariantAuditJob creates the audit job. An empty schedule means
// DefaultAuditSchedule; the schedule is a six-field cron expression.
func NewInvariantAuditJob(
	snapshot ports.ChangeSnapshot,
	evaluator ChangeEvaluator,
	schedule string,
	logger *slog.Logger,
) *InvariantAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &InvariantAuditJob{
		snapshot:  snapshot,
		evaluator: evaluator,
		schedule:  schedule,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "invariant_audit_job"),
	}
}

// Start schedules the audit.
func (j *InvariantAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invariant audit job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs one sweep and returns the number of alerts raised. A
// sweep that starts while another is running is skipped and returns 0.
func (j *InvariantAuditJob) RunOnce(ctx context.Context) int {
	if !j.running.TryLock() {
		j.logger.WarnContext(ctx, "Previous audit still running, skipping")
		return 0
	}
	defer j.running.Unlock()

	changes, err := j.snapshot.Snapshot(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invariant audit failed", "error", err)
		return 0
	}

	alerts := 0
	for _, change := range changes {
		if ctx.Err() != nil {
			j.logger.WarnContext(ctx, "Invariant audit interrupted", "error", ctx.Err())
			break
		}
		alerts += len(j.evaluator.Evaluate(ctx, change))
	}

	j.logger.InfoContext(ctx, "Invariant audit finished", "documents", len(changes), "alerts", alerts)
	return alerts
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *InvariantAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Invariant audit job stopped")
}
