// Package jobs provides scheduled background tasks for the delivery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - Runs every minute to reload the in-memory catalog
// snapshot (providers and zones) from the database.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, catalogCache, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Refresh failures are logged and retried on the next tick; the cache keeps
// serving its last snapshot, so a flaky database never blanks the catalogue.
// - Failed job starts return an error to the caller.
package jobs
