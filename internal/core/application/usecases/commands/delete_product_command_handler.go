package commands

import (
	"context"
)

// DeleteProductCommandHandler handles the business logic for product removal.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product removal operations.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product removal command.
// Fails with an object-not-found error when the product does not exist.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, command DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()

	if _, err := productRepo.Get(ctx, command.ProductID()); err != nil {
		return err
	}

	if err := productRepo.Delete(ctx, command.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
