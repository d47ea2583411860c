package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles the business logic for customer edits.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer edit operations.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer edit command.
// Loads the customer, applies the new attributes and persists the change.
// The stored avatar reference survives the update untouched.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, command UpdateCustomerCommand) error {
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

	aggregate, err := customerRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	err = aggregate.Update(
		command.Name(), command.Email(), command.Phone(), command.City(), command.Active())
	if err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
