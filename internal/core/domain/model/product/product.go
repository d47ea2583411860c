package product

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created through its constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ErrInsufficientStock is returned when a stock deduction asks for more units
// than the product currently has.
var ErrInsufficientStock = errors.New("insufficient stock")

const defaultCategory = "Uncategorized"

const defaultImageContentType = "image/jpeg"

// Product is the aggregate root for a sellable item.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Category falls back to "Uncategorized" when not provided
//   - Price is never negative (enforced by kernel.Money)
//   - Stock is never negative; deductions beyond the available stock are
//     rejected with ErrInsufficientStock
//   - Can only be created through NewProduct or RestoreProduct constructors
//
// An optional image is stored inline as raw bytes plus a MIME type.
type Product struct {
	id               kernel.UUID
	name             string
	category         string
	price            kernel.Money
	stock            int
	active           bool
	image            []byte
	imageContentType string
	createdAt        time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a product with the current UTC time as its creation
// timestamp. An empty category falls back to the default one. Stock must not
// be negative.
func NewProduct(id kernel.UUID, name string, category string,
	price kernel.Money, stock int, active bool) (*Product, error) {
	product := &Product{
		active:    active,
		createdAt: time.Now().UTC(),
	}

	err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setCategory(category),
		product.setPrice(price),
		product.setStock(stock),
	)
	if err != nil {
		return nil, err
	}

	product.guard = guard.NewConstructorGuard()
	return product, nil
}

// RestoreProduct reconstructs a product from persisted state.
func RestoreProduct(id kernel.UUID, name string, category string,
	price kernel.Money, stock int, active bool,
	image []byte, imageContentType string, createdAt time.Time) (*Product, error) {
	product := &Product{
		active: active,
	}

	err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setCategory(category),
		product.setPrice(price),
		product.setStock(stock),
		product.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}

	if len(image) > 0 {
		product.image = append([]byte(nil), image...)
		product.imageContentType = imageContentType
		if product.imageContentType == "" {
			product.imageContentType = defaultImageContentType
		}
	}

	product.guard = guard.NewConstructorGuard()
	return product, nil
}

// Validate checks that the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares products by identity.
func (p *Product) IsEqual(other *Product) bool {
	if p == nil || other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the product category.
func (p *Product) Category() string {
	return p.category
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// IsActive reports whether the product can be sold.
func (p *Product) IsActive() bool {
	return p.active
}

// HasImage reports whether an image is stored for the product.
func (p *Product) HasImage() bool {
	return len(p.image) > 0
}

// Image returns a copy of the stored image bytes, or nil when none is set.
func (p *Product) Image() []byte {
	if p.image == nil {
		return nil
	}
	return append([]byte(nil), p.image...)
}

// ImageContentType returns the MIME type of the stored image, or an empty
// string when no image is set.
func (p *Product) ImageContentType() string {
	return p.imageContentType
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// Update replaces the editable attributes. The stored image is kept as-is so
// that an update without a new upload does not drop the existing image.
func (p *Product) Update(name string, category string, price kernel.Money, stock int, active bool) error {
	if err := p.Validate(); err != nil {
		return err
	}

	err := errors.Join(
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setStock(stock),
	)
	if err != nil {
		return err
	}

	p.active = active
	return nil
}

// SetImage stores an image for the product, replacing any previous one. An
// empty content type falls back to image/jpeg.
func (p *Product) SetImage(data []byte, contentType string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("image data is required")
	}

	p.image = append([]byte(nil), data...)
	p.imageContentType = contentType
	if p.imageContentType == "" {
		p.imageContentType = defaultImageContentType
	}
	return nil
}

// DeductStock removes quantity units from stock when placing an order.
//
// The deduction is all-or-nothing. Asking for more units than available
// returns ErrInsufficientStock and leaves the stock unchanged, which lets
// order placement reject a whole order on the first short line.
func (p *Product) DeductStock(quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stock {
		return fmt.Errorf("%w: %s has %d available, requested %d",
			ErrInsufficientStock, p.name, p.stock, quantity)
	}

	p.stock -= quantity
	return nil
}

// Restock returns quantity units to stock, used when a cancelled order
// releases its line items.
func (p *Product) Restock(quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		category = defaultCategory
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is less than 0", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt is required")
	}
	p.createdAt = createdAt
	return nil
}
