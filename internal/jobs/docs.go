// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations that keep orders flowing.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every second to hand boxed orders to available couriers
// 2. CourierMovementJob - Runs every second to move couriers toward their
// destinations, completing deliveries and capturing cash payments on arrival
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(moveCouriersHandler, dispatchHandler, ordersByStatusHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "* * * * * *" which means they run every
// second. This frequency keeps the kitchen-to-door pipeline responsive.
//
// # Error Handling
//
// - Dispatch job ignores the expected no-free-couriers case
// - Movement job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
