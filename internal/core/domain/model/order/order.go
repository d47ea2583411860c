package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a purchase transaction in the back office. It is the aggregate
// root that manages the order lifecycle from placement through payment and shipment
// to cancellation, together with its line item snapshots.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must contain at least one line item
//   - Total always equals the sum of line subtotals captured at creation time
//   - Status transitions follow the fixed lifecycle table
//   - Can only be created through NewOrder or RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order was placed for
	customerID kernel.UUID

	// placedBy is the email of the account that created the order
	placedBy string

	// paymentMethod is how the order is paid for
	paymentMethod PaymentMethod

	// status represents the current state in the order lifecycle
	status Status

	// items are the product snapshots the order was placed with
	items []LineItem

	// total is the sum of line subtotals, fixed at creation time
	total kernel.Money

	// placedAt is when the order was created
	placedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with validation. This is the only way to place
// a fresh order, ensuring all business invariants are maintained.
//
// The order starts in the Created status with its placement time set to the
// current UTC time and its total computed from the line item subtotals.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Customer the order belongs to (must be valid UUID)
//   - placedBy: Email of the creating account (must be non-empty)
//   - paymentMethod: How the order is paid for (must be valid)
//   - items: Line item snapshots (must contain at least one valid item)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Aggregated validation errors, if any
//
// Example:
//
//	item, _ := order.NewLineItem(productID, "Espresso beans 1kg", 3, price)
//	ord, err := order.NewOrder(order.ID(), customerID, "admin@demo.local",
//	    order.PaymentMethodCash, []order.LineItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	placedBy string,
	paymentMethod PaymentMethod,
	items []LineItem,
) (*Order, error) {
	order := &Order{
		status:   Created,
		placedAt: time.Now().UTC(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPlacedBy(placedBy),
		order.setPaymentMethod(paymentMethod),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.recalculateTotal(); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder which places fresh orders in the Created status, this
// constructor restores an order to its previously persisted state.
//
// The total is recomputed from the restored line items, so the invariant
// "total equals the sum of line subtotals" holds for restored orders too.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: Customer the order belongs to
//   - placedBy: Email of the creating account
//   - paymentMethod: How the order is paid for
//   - status: Lifecycle status at the time of persistence
//   - placedAt: When the order was originally created
//   - items: Persisted line item snapshots
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Aggregated validation errors, if any
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	placedBy string,
	paymentMethod PaymentMethod,
	status Status,
	placedAt time.Time,
	items []LineItem,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setPlacedBy(placedBy),
		order.setPaymentMethod(paymentMethod),
		order.setStatus(status),
		order.setPlacedAt(placedAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.recalculateTotal(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer the order was placed for.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PlacedBy returns the email of the account that created the order.
func (o *Order) PlacedBy() string {
	return o.placedBy
}

// PaymentMethod returns how the order is paid for.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line item snapshots.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the order total, equal to the sum of line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PlacedAt returns when the order was created.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ChangeStatus transitions the order to the target status.
//
// This method enforces the order lifecycle:
//   - Created -> Paid, Shipped, Cancelled
//   - Paid -> Shipped, Cancelled
//   - Shipped -> Paid
//   - Cancelled permits no further transitions
//
// The order is left unchanged when the transition is rejected.
//
// Returns:
//   - nil on a successful transition
//   - error wrapping ErrInvalidStatusTransition if the transition is not allowed
//
// Example:
//
//	if err := ord.ChangeStatus(order.Paid); err != nil {
//	    // Transition rejected, order state unchanged
//	}
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order into the Cancelled status.
// It is shorthand for ChangeStatus(Cancelled) and is subject to the same
// lifecycle rules: once cancelled, an order cannot be cancelled again.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the order's customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setPlacedBy validates and sets the creator identity.
// This is a private method used only during construction.
func (o *Order) setPlacedBy(placedBy string) error {
	if placedBy == "" {
		return errs.NewValueIsRequiredError("placedBy is required")
	}
	o.placedBy = placedBy
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setStatus validates and sets the lifecycle status.
// Used during restoration to establish the persisted state.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setPlacedAt validates and sets the placement time.
// Used during restoration to establish the persisted state.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt is required")
	}
	o.placedAt = placedAt
	return nil
}

// setItems validates and sets the line item snapshots.
// An order must contain at least one valid item.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items are required")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

// recalculateTotal derives the order total from the line item subtotals.
// Called after the items are set so the total can never drift from them.
func (o *Order) recalculateTotal() error {
	total := kernel.NewZeroMoney()

	for _, item := range o.items {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return err
		}
		total = sum
	}

	o.total = total
	return nil
}
