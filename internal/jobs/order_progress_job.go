package jobs

import (
	"context"
	"log/slog"
	"time"

	"wiggy/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOrderProgressSchedule advances orders every 30 seconds.
const DefaultOrderProgressSchedule = "*/30 * * * * *"

// orderAdvancer is satisfied by *commands.AdvanceOrdersCommandHandler.
type orderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrdersCommand) (int, error)
}

// OrderProgressJob walks demo orders through the lifecycle: each run advances every order
// idle for longer than idleFor by one status.
type OrderProgressJob struct {
	handler   orderAdvancer
	schedule  string
	idleFor   time.Duration
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderProgressJob creates the job. schedule is a six-field cron expression (with seconds);
// an empty schedule uses DefaultOrderProgressSchedule.
func NewOrderProgressJob(
	handler orderAdvancer,
	schedule string,
	idleFor time.Duration,
	batchSize int,
	logger *slog.Logger,
) *OrderProgressJob {
	if schedule == "" {
		schedule = DefaultOrderProgressSchedule
	}
	return &OrderProgressJob{
		handler:   handler,
		schedule:  schedule,
		idleFor:   idleFor,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_progress_job"),
	}
}

func (j *OrderProgressJob) Name() string { return "order progress job" }

// Start registers the job on its schedule and starts the scheduler.
func (j *OrderProgressJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progress job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single pass and reports how many orders moved.
func (j *OrderProgressJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewAdvanceOrdersCommand(j.idleFor, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order progress job misconfigured", "error", err)
		return 0
	}

	advanced, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order progress job failed", "error", err)
		return 0
	}
	if advanced > 0 {
		j.logger.InfoContext(ctx, "Orders advanced", "count", advanced)
	}
	return advanced
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OrderProgressJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order progress job stopped")
}
