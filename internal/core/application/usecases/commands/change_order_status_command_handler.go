package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler orchestrates order lifecycle transitions.
//
// A transition is validated against the lifecycle table before any side
// effect. Accepted transitions into Cancelled return every line's quantity
// to stock; since Cancelled is terminal, a second cancellation is rejected
// by the table and can never restock twice. Restock, status write and the
// audit record commit in one transaction.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Rejected transitions return order.ErrInvalidStatusTransition with nothing
// written. Accepted transitions write the new status and exactly one audit
// record, plus the compensating stock increments when entering Cancelled.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	priorStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(command.NewStatus()); err != nil {
		return err
	}

	if command.NewStatus() == order.Cancelled {
		if err = h.restockItems(ctx, uow, aggregate.Items()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	record, err := audit.NewRecord(
		kernel.NewUUID(), audit.EntityTypeOrder, aggregate.ID(), audit.ActionUpdateOrderStatus,
		map[string]any{"status": priorStatus.String()},
		map[string]any{"status": aggregate.Status().String()},
		command.Actor())
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// restockItems returns cancelled quantities to stock. Lines whose product has
// been deleted since the order was placed are skipped.
func (h ChangeOrderStatusCommandHandler) restockItems(ctx context.Context,
	uow OrderStatusUoW, items []order.LineItem) error {
	productRepo := uow.ProductRepository()

	for _, item := range items {
		productAggregate, err := productRepo.GetForUpdate(ctx, item.ProductID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		if err = productAggregate.Restock(item.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, productAggregate); err != nil {
			return err
		}
	}

	return nil
}
