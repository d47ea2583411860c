package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrStockIsInvalid = errors.New("stock must not be negative")
)

// CreateProductCommand represents an administrator request to add a product
// to the catalogue, optionally with an inline image.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
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

// NewCreateProductCommand creates a command to add a product. The category may
// be empty (the aggregate applies its default) and the image is optional.
func NewCreateProductCommand(productID kernel.UUID, name string, category string,
	price kernel.Money, stock int, active bool,
	image []byte, imageContentType string) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
		command.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	command.category = category
	command.active = active
	command.image = append([]byte(nil), image...)
	command.imageContentType = imageContentType

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Category returns the product category, possibly empty.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// Active returns the active flag.
func (c CreateProductCommand) Active() bool {
	return c.active
}

// Image returns the optional image bytes, nil when none were uploaded.
func (c CreateProductCommand) Image() []byte {
	if len(c.image) == 0 {
		return nil
	}
	return append([]byte(nil), c.image...)
}

// ImageContentType returns the MIME type of the uploaded image.
func (c CreateProductCommand) ImageContentType() string {
	return c.imageContentType
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
