package jobs

import (
	"context"
	"log/slog"
	"time"

	"quickbite/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProgressionJob drives the automatic order lifecycle. It runs every
// second and applies all scheduled transitions whose fire time has passed,
// so an order created at T reaches Preparing, Out for Delivery, and
// Delivered on the first ticks after T+5s, T+10s, and T+15s.
type OrderProgressionJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProgressionJob creates the progression job. Uses
// AdvanceOrdersCommandHandler to sweep due transitions every second.
func NewOrderProgressionJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderProgressionJob {
	return &OrderProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_progression_job"),
	}
}

// Start begins the progression job to run every second.
func (j *OrderProgressionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewAdvanceOrdersCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order progression sweep could not be built", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order progression sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started (running every second)")
	return nil
}

// Stop stops the progression job.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}
