package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultKitchenReportSchedule runs the report at the start of every minute.
const DefaultKitchenReportSchedule = "0 * * * * *"

type kitchenLoadReader interface {
	Handle(ctx context.Context, query queries.GetKitchenLoadQuery) (queries.KitchenLoadResponse, error)
}

// KitchenLoadReportJob periodically logs how many orders are in each status and
// how many tables are occupied. It never writes.
type KitchenLoadReportJob struct {
	handler  kitchenLoadReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenLoadReportJob uses a seconds-enabled cron spec. An empty schedule
// falls back to DefaultKitchenReportSchedule.
func NewKitchenLoadReportJob(handler kitchenLoadReader, schedule string, logger *slog.Logger) *KitchenLoadReportJob {
	if schedule == "" {
		schedule = DefaultKitchenReportSchedule
	}

	return &KitchenLoadReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_load_report_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *KitchenLoadReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Report); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Kitchen load report job started", "schedule", j.schedule)
	return nil
}

// Report reads the current load once and logs it.
func (j *KitchenLoadReportJob) Report() {
	ctx := context.Background()

	load, err := j.handler.Handle(ctx, queries.NewGetKitchenLoadQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen load report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Kitchen load",
		"cooking", load.Cooking,
		"meal", load.Meal,
		"completion", load.Completion,
		"active_orders", load.ActiveOrders(),
		"occupied_tables", load.OccupiedTables,
		"empty_tables", load.EmptyTables,
	)
}

// Stop waits for a running report to finish.
func (j *KitchenLoadReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Kitchen load report job stopped")
}
