package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	kitchenLoadReportJob *KitchenLoadReportJob
}

// NewJobManager creates a job manager with every scheduled job wired to its
// query handler.
func NewJobManager(
	kitchenLoadHandler kitchenLoadReader,
	kitchenReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenLoadReportJob: NewKitchenLoadReportJob(kitchenLoadHandler, kitchenReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenLoadReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen load report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenLoadReportJob.Stop()
}
