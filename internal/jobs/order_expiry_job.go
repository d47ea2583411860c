package jobs

import (
	"context"
	"log/slog"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob runs the periodic sweep that cancels orders left unpaid
// past the payment window.
type OrderExpiryJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpiryJob creates the expiry job. The sweep itself decides which
// orders are stale; the job only provides the schedule.
func NewOrderExpiryJob(handler commands.ExpireStaleOrdersCommandHandler, logger *slog.Logger) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiry_job"),
	}
}

// Start begins the expiry sweep, running at the start of every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		command := commands.NewExpireStaleOrdersCommand()

		if err := j.handler.Handle(ctx, command); err != nil {
			j.logger.ErrorContext(ctx, "Order expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
