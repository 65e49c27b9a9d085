// Package jobs provides scheduled background tasks for kitchenpos.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled, so
// schedules have six fields.
//
// # Available Jobs
//
// KitchenLoadReportJob reads GetKitchenLoadQuery and logs the number of orders per
// status together with occupied and empty table counts. It runs every minute
// unless KITCHEN_REPORT_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(kitchenLoadHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed report is logged and retried on the next tick.
package jobs
