// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and are managed by JobManager.
//
// # Available Jobs
//
// OutboxRelayJob publishes pending order transition events from the outbox table
// to Kafka. Events are written to the outbox in the same transaction as the order
// change, so the relay delivers each one at least once.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(relayHandler, "*/2 * * * * *", 100, m.RelayedEvents, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
