package jobs

import (
	"context"
	"log/slog"

	"sitta/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockAlertsHandler is satisfied by queries.GetStockAlertsQueryHandler.
type StockAlertsHandler interface {
	Handle(ctx context.Context, query queries.GetStockAlertsQuery) (queries.GetStockAlertsQueryResponse, error)
}

// StockAlertJob periodically logs stock items that need restocking.
type StockAlertJob struct {
	handler  StockAlertsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStockAlertJob creates the job. schedule is a cron spec with seconds.
func NewStockAlertJob(handler StockAlertsHandler, schedule string, logger *slog.Logger) *StockAlertJob {
	return &StockAlertJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_alert_job"),
	}
}

// Start registers the check on the schedule and starts the scheduler.
func (j *StockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.check(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock alert job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running check.
func (j *StockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stock alert job stopped")
}

func (j *StockAlertJob) check(ctx context.Context) {
	resp, err := j.handler.Handle(ctx, queries.NewGetStockAlertsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock alert job failed", "error", err)
		return
	}

	if len(resp.Empty) == 0 && len(resp.Low) == 0 {
		j.logger.DebugContext(ctx, "All stock items are above their safety level")
		return
	}

	for _, item := range resp.Empty {
		j.logger.WarnContext(ctx, "Stock item is empty",
			"code", item.Code,
			"title", item.Title,
			"region", item.RegionName,
		)
	}
	for _, item := range resp.Low {
		j.logger.WarnContext(ctx, "Stock item is below safety level",
			"code", item.Code,
			"title", item.Title,
			"region", item.RegionName,
			"quantity", item.Quantity,
			"safety", item.Safety,
		)
	}
	j.logger.InfoContext(ctx, "Stock alert check finished", "empty", len(resp.Empty), "low", len(resp.Low))
}
