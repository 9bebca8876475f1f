package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

// DispatchJob manages the scheduled hand-off of boxed orders to couriers.
// Runs every second to match boxed orders with available couriers.
type DispatchJob struct {
	dispatchHandler commands.DispatchOrderCommandHandler
	ordersHandler   queries.GetOrdersByStatusQueryHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewDispatchJob creates a new job for dispatching boxed orders.
func NewDispatchJob(
	dispatchHandler commands.DispatchOrderCommandHandler,
	ordersHandler queries.GetOrdersByStatusQueryHandler,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		dispatchHandler: dispatchHandler,
		ordersHandler:   ordersHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

func (j *DispatchJob) tick() {
	ctx := context.Background()

	query, err := queries.NewGetOrdersByStatusQuery(order.Boxed)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch job failed to build query", "error", err)
		return
	}

	boxed, err := j.ordersHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch job failed to list boxed orders", "error", err)
		return
	}

	for _, view := range boxed {
		cmd, cmdErr := commands.NewDispatchOrderCommand(view.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Dispatch job failed to build command", "error", cmdErr)
			continue
		}

		if handleErr := j.dispatchHandler.Handle(ctx, cmd); handleErr != nil {
			// An exhausted fleet is the normal state during rush hour.
			if errors.Is(handleErr, services.ErrNoCouriersAvailable) {
				return
			}
			j.logger.ErrorContext(ctx, "Dispatch job failed",
				"order_id", view.ID.String(), "error", handleErr)
		}
	}
}
