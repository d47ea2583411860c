package commands

import (
	"context"
)

// UpdateProductImageCommandHandler handles product image uploads.
type UpdateProductImageCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductImageCommandHandler creates a handler for image uploads.
func NewUpdateProductImageCommandHandler(uowFactory ProductUoWFactory) UpdateProductImageCommandHandler {
	return UpdateProductImageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the image upload command.
func (h UpdateProductImageCommandHandler) Handle(ctx context.Context, command UpdateProductImageCommand) error {
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

	if err = aggregate.SetImage(command.Image(), command.ContentType()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
