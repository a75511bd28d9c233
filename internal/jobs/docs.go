// Package jobs provides scheduled background tasks for the depot system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the depot service.
//
// # Available Jobs
//
// 1. DepotStatusJob - Runs every minute to log a snapshot of the depot inventory
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getDepotParcelsHandler, logger)
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
// The status job logs query failures and skips the snapshot for that tick.
// Failed job starts report an error to the caller.
package jobs
