package commands

import (
	"context"

	"backoffice/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for product creation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Creates the product and stores the uploaded image when one was provided.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) error {
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

	aggregate, err := product.NewProduct(
		command.ProductID(), command.Name(), command.Category(),
		command.Price(), command.Stock(), command.Active())
	if err != nil {
		return err
	}

	if image := command.Image(); image != nil {
		if err = aggregate.SetImage(image, command.ImageContentType()); err != nil {
			return err
		}
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
