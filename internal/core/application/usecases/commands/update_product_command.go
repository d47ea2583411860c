package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents an administrator request to edit a product.
// When no new image is supplied the stored one is kept.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID        kernel.UUID
	name             string
	category         string
	price            kernel.Money
	stock            int
	active           bool
	image            []byte
	imageContentType string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit an existing product.
func NewUpdateProductCommand(productID kernel.UUID, name string, category string,
	price kernel.Money, stock int, active bool,
	image []byte, imageContentType string) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	command.category = category
	command.active = active
	command.image = append([]byte(nil), image...)
	command.imageContentType = imageContentType

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to edit.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Category returns the new category, possibly empty.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the new stock level.
func (c UpdateProductCommand) Stock() int {
	return c.stock
}

// Active returns the new active flag.
func (c UpdateProductCommand) Active() bool {
	return c.active
}

// Image returns the replacement image bytes, nil when none were uploaded.
func (c UpdateProductCommand) Image() []byte {
	if len(c.image) == 0 {
		return nil
	}
	return append([]byte(nil), c.image...)
}

// ImageContentType returns the MIME type of the replacement image.
func (c UpdateProductCommand) ImageContentType() string {
	return c.imageContentType
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
