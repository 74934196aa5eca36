package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// maxBatchesPerTick bounds how long one tick may keep draining a backlog.
const maxBatchesPerTick = 10

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending transition events from the
// outbox. A tick that is still draining when the next one fires makes that
// next tick a no-op.
type OutboxRelayJob struct {
	handler  relayHandler
	schedule string
	cmd      commands.RelayOutboxCommand
	relayed  prometheus.Counter
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a cron expression with a
// leading seconds field, e.g. "*/2 * * * * *".
func NewOutboxRelayJob(
	handler relayHandler,
	schedule string,
	batchSize int,
	relayed prometheus.Counter,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}

	scheduler := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &OutboxRelayJob{
		handler:  handler,
		schedule: schedule,
		cmd:      cmd,
		relayed:  relayed,
		cron:     scheduler,
		logger:   logger.With("component", "outbox_relay_job"),
	}, nil
}

// Start schedules the job and starts the cron runner.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid outbox relay schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule, "batch_size", j.cmd.BatchSize())
	return nil
}

// RunOnce relays full batches until the outbox is drained, a batch fails, or
// maxBatchesPerTick is reached. It returns the number of events published.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	total := 0
	for range maxBatchesPerTick {
		n, err := j.handler.Handle(ctx, j.cmd)
		total += n
		j.relayed.Add(float64(n))
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "relayed", total)
			return total
		}
		if n < j.cmd.BatchSize() {
			break
		}
	}

	if total > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "count", total)
	}
	return total
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
