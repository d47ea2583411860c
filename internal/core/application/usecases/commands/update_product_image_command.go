package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrUpdateProductImageCommandIsNotConstructed = errors.New(
		"UpdateProductImageCommand must be created via NewUpdateProductImageCommand constructor",
	)
	ErrImageDataIsRequired = errors.New("image data is required")
)

// UpdateProductImageCommand represents an image upload for an existing
// product. Only the image changes; the catalogue attributes stay untouched.
type UpdateProductImageCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	image       []byte
	contentType string

	guard guard.ConstructorGuard
}

// NewUpdateProductImageCommand creates a command to replace a product image.
// The content type may be empty; the aggregate applies its default then.
func NewUpdateProductImageCommand(productID kernel.UUID,
	image []byte, contentType string) (UpdateProductImageCommand, error) {
	command := UpdateProductImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setImage(image),
	); err != nil {
		return UpdateProductImageCommand{}, err
	}

	command.contentType = contentType

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductImageCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductImageCommandIsNotConstructed)
}

// ProductID returns the identifier of the product receiving the image.
func (c UpdateProductImageCommand) ProductID() kernel.UUID {
	return c.productID
}

// Image returns the uploaded image bytes.
func (c UpdateProductImageCommand) Image() []byte {
	return append([]byte(nil), c.image...)
}

// ContentType returns the MIME type of the upload, possibly empty.
func (c UpdateProductImageCommand) ContentType() string {
	return c.contentType
}

func (c *UpdateProductImageCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductImageCommand) setImage(image []byte) error {
	if len(image) == 0 {
		return ErrImageDataIsRequired
	}

	c.image = append([]byte(nil), image...)
	return nil
}
