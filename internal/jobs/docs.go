// Package jobs provides scheduled background tasks for the cargo tracker.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field schedules with seconds).
//
// # Available Jobs
//
// OutboxRelayJob publishes the signals that handling registration and cargo
// inspection record in the transactional outbox ("cargo was handled",
// "cargo was misdirected", "cargo has arrived"). Each tick drains the outbox
// batch by batch; a signal that fails to publish stays pending for the next tick.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxCron, commands.DefaultRelayBatchSize, logger)
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatalf("failed to start jobs: %v", err)
//	}
//	defer jobManager.StopAll()
package jobs
