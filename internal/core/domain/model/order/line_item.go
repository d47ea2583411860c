package order

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed indicates that a LineItem was not properly
// initialized through the NewLineItem constructor function.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a snapshot of one product position within an order.
// The product name and unit price are captured at order creation time, so
// historical orders are immune to later product edits. LineItem is an
// immutable value object; the subtotal is derived from quantity and unit
// price during construction and can never drift from them.
//
// Key business rules:
//   - Quantity must be a positive integer
//   - Unit price must be a valid non-negative amount
//   - Subtotal always equals unit price multiplied by quantity
type LineItem struct {
	// productID references the product this line was created from
	productID kernel.UUID

	// productName is the product name captured at order creation time
	productName string

	// quantity is the number of units ordered
	quantity int

	// unitPrice is the product price captured at order creation time
	unitPrice kernel.Money

	// subtotal is unitPrice multiplied by quantity
	subtotal kernel.Money

	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot for the given product position.
//
// Parameters:
//   - productID: Identifier of the ordered product (must be valid UUID)
//   - productName: Product name at order time (must be non-empty)
//   - quantity: Number of units (must be positive)
//   - unitPrice: Product price at order time (must be a valid Money)
//
// Returns:
//   - LineItem: The constructed snapshot with its subtotal computed
//   - error: Aggregated validation errors, if any
//
// Example:
//
//	item, err := order.NewLineItem(productID, "Espresso beans 1kg", 3, price)
//	if err != nil {
//	    return err
//	}
//	// item.Subtotal() is price * 3
func NewLineItem(productID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	subtotal, err := unitPrice.MultiplyByQuantity(quantity)
	if err != nil {
		return LineItem{}, err
	}
	item.subtotal = subtotal

	return item, nil
}

// Validate checks if the LineItem was properly constructed using NewLineItem.
// The zero value of LineItem is invalid and will fail this validation.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the product this line was created from.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at order creation time.
func (i LineItem) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the product price captured at order creation time.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns the line subtotal, always equal to unit price times quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.subtotal
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *LineItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName is required")
	}

	i.productName = productName
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	i.unitPrice = unitPrice
	return nil
}
