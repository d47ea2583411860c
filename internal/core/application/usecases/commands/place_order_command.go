package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrPlacedByIsRequired    = errors.New("placed by is required")
)

// OrderLine is one requested (product, quantity) pair of an order placement.
// Price and name snapshots are taken from the product rows during handling,
// not from the client.
type OrderLine struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderLine creates an order line request. Quantity must be positive.
func NewOrderLine(productID kernel.UUID, quantity int) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the requested product.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the requested units.
func (l OrderLine) Quantity() int {
	return l.quantity
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	l.quantity = quantity
	return nil
}

// PlaceOrderCommand represents a request to place an order for a customer.
//
// Example:
//
//	line, _ := NewOrderLine(productID, 3)
//	cmd, err := NewPlaceOrderCommand(
//	    kernel.NewUUID(), customerID, order.PaymentMethodCash,
//	    "maria@example.com", []OrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, product.ErrInsufficientStock):
//	    // some line asked for more than is available
//	case errors.Is(err, ErrProductNotAvailable):
//	    // some line referenced a missing or inactive product
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	paymentMethod order.PaymentMethod
	placedBy      string
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Requires a valid payment method, the creator identity and at least one line.
func NewPlaceOrderCommand(orderID kernel.UUID, customerID kernel.UUID,
	paymentMethod order.PaymentMethod, placedBy string, lines []OrderLine) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setPaymentMethod(paymentMethod),
		command.setPlacedBy(placedBy),
		command.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer the order is placed for.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentMethod returns how the order is paid for.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// PlacedBy returns the email of the creating account.
func (c PlaceOrderCommand) PlacedBy() string {
	return c.placedBy
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *PlaceOrderCommand) setPlacedBy(placedBy string) error {
	if placedBy == "" {
		return ErrPlacedByIsRequired
	}

	c.placedBy = placedBy
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
