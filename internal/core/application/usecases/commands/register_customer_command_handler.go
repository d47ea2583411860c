package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the registration email is taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterCustomerCommandHandler handles self registration.
// Customer profile and login account are written in one transaction, so a
// failure on either side leaves no half-registered state behind.
type RegisterCustomerCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for self registration.
func NewRegisterCustomerCommandHandler(uowFactory RegistrationUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Rejects emails that already have an account, then creates the customer and
// its user-role account linked to it.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, command RegisterCustomerCommand) error {
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

	accountRepo := uow.AccountRepository()

	_, err := accountRepo.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	customerAggregate, err := customer.NewCustomer(
		command.CustomerID(), command.Name(), command.Email(), command.Phone(), command.City())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, customerAggregate); err != nil {
		return err
	}

	customerID := command.CustomerID()
	accountAggregate, err := account.NewAccount(
		command.AccountID(), command.Email(), command.Password(), account.User, &customerID)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, accountAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
