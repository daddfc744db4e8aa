package jobs

import (
	"context"
	"log/slog"
	"sync"

	"cargotracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type RelaySignalsHandler interface {
	Handle(ctx context.Context, cmd commands.RelaySignalsCommand) (int, error)
}

// OutboxRelayJob drains the signal outbox on a cron schedule. A tick that finds
// the previous one still running is skipped.
type OutboxRelayJob struct {
	handler   RelaySignalsHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewOutboxRelayJob takes a six-field cron schedule (with seconds).
func NewOutboxRelayJob(handler RelaySignalsHandler, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	ctx, cancel := context.WithCancel(context.Background())
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays full batches until the outbox has no more pending signals
// or a batch publishes nothing.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewRelaySignalsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return 0
	}

	total := 0
	for ctx.Err() == nil {
		sent, err := j.handler.Handle(ctx, cmd)
		total += sent
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
			break
		}
		if sent < j.batchSize {
			break
		}
	}

	if total > 0 {
		j.logger.DebugContext(ctx, "signals relayed", "count", total)
	}
	return total
}

// Stop waits for a running relay to finish. It is safe to call more than once.
func (j *OutboxRelayJob) Stop() {
	j.once.Do(func() {
		<-j.cron.Stop().Done()
		j.cancel()
		j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
	})
}
