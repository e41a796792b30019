package jobs

import (
	"context"
	"log/slog"

	"progress/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDashboardSnapshotSchedule is used when no schedule is configured.
const DefaultDashboardSnapshotSchedule = "@every 1m"

// DashboardReader is the dashboard query handler.
type DashboardReader interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.Dashboard, error)
}

// DashboardSnapshotJob periodically logs the order dashboard so that progress
// over time can be read back from the logs.
type DashboardSnapshotJob struct {
	handler  DashboardReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardSnapshotJob creates a job running on schedule, a robfig/cron
// expression such as "@every 1m" or "0 */15 * * * *" (seconds field included).
func NewDashboardSnapshotJob(handler DashboardReader, schedule string, logger *slog.Logger) *DashboardSnapshotJob {
	if schedule == "" {
		schedule = DefaultDashboardSnapshotSchedule
	}
	return &DashboardSnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dashboard_snapshot_job"),
	}
}

// Start schedules the snapshot and starts the scheduler.
func (j *DashboardSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot.
func (j *DashboardSnapshotJob) Run(ctx context.Context) {
	dashboard, err := j.handler.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Dashboard snapshot failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Dashboard snapshot",
		"total", dashboard.Total,
		"completed", dashboard.Completed,
		"in_progress", dashboard.InProgress,
		"not_started", dashboard.NotStarted,
		"average_progress", dashboard.AverageProgress,
	)
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *DashboardSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dashboard snapshot job stopped")
}
