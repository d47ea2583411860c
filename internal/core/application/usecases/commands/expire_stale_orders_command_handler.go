package commands

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/core/domain/model/order"
)

// SystemActor is recorded in the audit trail for job-driven transitions.
const SystemActor = "system"

// ExpireStaleOrdersCommandHandler cancels orders whose payment window passed.
//
// The sweep reads the stale order IDs in one short transaction, then cancels
// each order through the regular status change path in its own transaction.
// One order failing (for example a concurrent manual transition) does not
// block the rest of the sweep.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory    OrderUoWFactory
	statusHandler ChangeOrderStatusCommandHandler
	paymentWindow time.Duration
}

// NewExpireStaleOrdersCommandHandler creates a handler for the expiry sweep.
// A non-positive payment window disables the sweep entirely.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory,
	statusHandler ChangeOrderStatusCommandHandler,
	paymentWindow time.Duration) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory:    uowFactory,
		statusHandler: statusHandler,
		paymentWindow: paymentWindow,
	}
}

// Handle processes the expiry sweep command.
// Collects Created orders older than the payment window and cancels them one
// by one with "system" as the audit actor. Per-order failures are joined and
// reported after the sweep finishes.
func (h ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, command ExpireStaleOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if h.paymentWindow <= 0 {
		return nil
	}

	staleOrders, err := h.collectStaleOrders(ctx)
	if err != nil {
		return err
	}

	var sweepErr error
	for _, staleOrder := range staleOrders {
		cancelCommand, err := NewChangeOrderStatusCommand(staleOrder.ID(), order.Cancelled, SystemActor)
		if err != nil {
			sweepErr = errors.Join(sweepErr, err)
			continue
		}

		if err = h.statusHandler.Handle(ctx, cancelCommand); err != nil {
			sweepErr = errors.Join(sweepErr, err)
		}
	}

	return sweepErr
}

func (h ExpireStaleOrdersCommandHandler) collectStaleOrders(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-h.paymentWindow)

	staleOrders, err := uow.OrderRepository().GetAllInCreatedStatusOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return staleOrders, nil
}
