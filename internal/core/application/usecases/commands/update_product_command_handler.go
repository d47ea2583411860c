package commands

import (
	"context"
)

// UpdateProductCommandHandler handles the business logic for product edits.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product edit operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product edit command.
// Applies the new attributes and replaces the image only when a new one was
// uploaded; otherwise the stored image survives the edit.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, command UpdateProductCommand) error {
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

	aggregate, err := productRepo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	err = aggregate.Update(
		command.Name(), command.Category(), command.Price(), command.Stock(), command.Active())
	if err != nil {
		return err
	}

	if image := command.Image(); image != nil {
		if err = aggregate.SetImage(image, command.ImageContentType()); err != nil {
			return err
		}
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
