package commands

import (
	"context"
)

// DeleteCustomerCommandHandler handles the business logic for customer removal.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer removal operations.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer removal command.
// Fails with an object-not-found error when the customer does not exist.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, command DeleteCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	if _, err := customerRepo.Get(ctx, command.CustomerID()); err != nil {
		return err
	}

	if err := customerRepo.Delete(ctx, command.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
