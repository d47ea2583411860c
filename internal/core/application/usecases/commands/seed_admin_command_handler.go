package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/pkg/errs"
)

// SeedAdminCommandHandler handles idempotent admin account bootstrap.
type SeedAdminCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSeedAdminCommandHandler creates a handler for admin bootstrap operations.
func NewSeedAdminCommandHandler(uowFactory AccountUoWFactory) SeedAdminCommandHandler {
	return SeedAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the admin bootstrap command.
// Does nothing when an account with the admin email already exists, otherwise
// creates an admin-role account without a customer link.
func (h SeedAdminCommandHandler) Handle(ctx context.Context, command SeedAdminCommand) error {
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
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := account.NewAccount(
		command.AccountID(), command.Email(), command.Password(), account.Admin, nil)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
