package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	stockAlertJob *StockAlertJob
}

// NewJobManager creates a job manager with the stock alert job on schedule.
func NewJobManager(stockAlerts StockAlertsHandler, schedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		stockAlertJob: NewStockAlertJob(stockAlerts, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.stockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock alert job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.stockAlertJob.Stop()
}
