package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs started by the serve command.
type JobManager struct {
	dashboardSnapshotJob *DashboardSnapshotJob
}

// NewJobManager schedules the dashboard snapshot with snapshotSchedule.
func NewJobManager(
	dashboardHandler DashboardReader,
	snapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardSnapshotJob: NewDashboardSnapshotJob(dashboardHandler, snapshotSchedule, logger),
	}
}

// StartAll registers and starts every job. It fails on the first job whose
// schedule cannot be parsed.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard snapshot job: %w", err)
	}

	return nil
}

// StopAll blocks until running jobs finish.
func (jm *JobManager) StopAll() {
	jm.dashboardSnapshotJob.Stop()
}
