package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents an administrator request to remove a product.
// Order lines keep their snapshots, so history is unaffected.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a product.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	command := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to delete.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
