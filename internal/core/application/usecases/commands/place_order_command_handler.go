package commands

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/order"
)

// ErrProductNotAvailable is returned when an order line references a product
// that does not exist or is not active.
var ErrProductNotAvailable = errors.New("product is not available")

// PlaceOrderCommandHandler orchestrates order placement.
//
// The whole placement is one transaction. Product rows are read with a row
// lock before stock validation, so two concurrent orders against the same
// low-stock product serialize: the second sees the stock the first left
// behind and fails cleanly instead of overselling. Any rejected line rolls
// back everything, including deductions already applied for earlier lines.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Verifies the customer exists, then per line: locks the product row, checks
// it is active, deducts stock and snapshots name and price. On success one
// order with its line items is inserted and the transaction commits.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, command.CustomerID()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()

	items := make([]order.LineItem, 0, len(command.Lines()))
	for _, line := range command.Lines() {
		productAggregate, err := productRepo.GetForUpdate(ctx, line.ProductID())
		if err != nil {
			return err
		}
		if !productAggregate.IsActive() {
			return fmt.Errorf("%w: %s", ErrProductNotAvailable, productAggregate.Name())
		}

		if err = productAggregate.DeductStock(line.Quantity()); err != nil {
			return err
		}

		if err = productRepo.Update(ctx, productAggregate); err != nil {
			return err
		}

		item, err := order.NewLineItem(
			productAggregate.ID(), productAggregate.Name(), line.Quantity(), productAggregate.Price())
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		command.OrderID(), command.CustomerID(), command.PlacedBy(), command.PaymentMethod(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
