// Package jobs provides scheduled background tasks for the stock service.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field in the schedule.
//
// # Available Jobs
//
// 1. StockAlertJob - reports stock items that are empty or below their safety level
//
// # Usage
//
//	jobManager := jobs.NewJobManager(stockAlertsHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick runs as usual. An invalid schedule
// makes StartAll fail and stops any job that already started.
package jobs
