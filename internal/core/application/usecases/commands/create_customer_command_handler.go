package commands

import (
	"context"

	"backoffice/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer creation.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer creation operations.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command.
// Creates an active customer and persists it within a transaction.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, command CreateCustomerCommand) error {
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

	aggregate, err := customer.NewCustomer(
		command.CustomerID(), command.Name(), command.Email(), command.Phone(), command.City())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
