package kernel

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for monetary amounts.
// All amounts are rounded to this scale on construction, so arithmetic
// over Money values never accumulates sub-cent residues.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney or NewMoneyFromString constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyFromString constructors")

// Money represents a non-negative monetary amount with fixed-point precision.
// Money is an immutable value object; arithmetic methods return new instances.
// The zero value of Money is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("19.99")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: Price: 19.99
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a new Money from a decimal amount.
// The amount must not be negative and is rounded to MoneyScale decimal places.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
//
// Example:
//
//	price, err := NewMoney(decimal.NewFromFloat(19.99))
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewMoneyFromString creates a new Money from its decimal string representation,
// for example "19.99" or "100". Returns an error if the string is not a valid
// decimal number or represents a negative amount.
//
// This constructor is typically used when parsing amounts from requests or
// configuration.
//
// Example:
//
//	price, err := NewMoneyFromString("19.99")
//	if err != nil {
//	    return fmt.Errorf("invalid price: %w", err)
//	}
func NewMoneyFromString(value string) (Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// NewZeroMoney creates a Money representing a zero amount.
// Useful as the starting value when summing amounts.
//
// Example:
//
//	total := NewZeroMoney()
//	for _, item := range items {
//	    total, _ = total.Add(item.Subtotal())
//	}
func NewZeroMoney() Money {
	m, _ := NewMoney(decimal.Zero)
	return m
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the money was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
// The returned value is guaranteed to be non-negative and rounded to MoneyScale
// decimal places for properly constructed Money instances.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two monetary amounts.
// Both amounts must be properly constructed (pass validation) for the operation to succeed.
//
// Parameters:
//   - other: The Money to add
//
// Returns:
//   - Money: A new Money holding the sum
//   - error: Validation error if either amount is improperly constructed
//
// Example:
//
//	a, _ := NewMoneyFromString("10.50")
//	b, _ := NewMoneyFromString("4.25")
//	sum, err := a.Add(b)
//	// sum = 14.75, err = nil
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount))
}

// MultiplyByQuantity returns the amount multiplied by a non-negative integer quantity.
// This is the operation used to compute a line subtotal from a unit price.
//
// Parameters:
//   - quantity: The multiplier (must not be negative)
//
// Returns:
//   - Money: A new Money holding the product
//   - error: Validation error if the money is improperly constructed or quantity is negative
//
// Example:
//
//	price, _ := NewMoneyFromString("19.99")
//	subtotal, err := price.MultiplyByQuantity(3)
//	// subtotal = 59.97, err = nil
func (m Money) MultiplyByQuantity(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity %d cannot be negative", quantity))
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// IsEqual compares two monetary amounts for equality.
// Two amounts are considered equal if they represent the same numeric value.
// Both amounts must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Money to compare with
//
// Returns:
//   - bool: true if amounts are equal, false otherwise
//   - error: Validation error if either amount is improperly constructed
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount.Equal(other.amount), nil
}

// String returns the amount formatted with exactly MoneyScale decimal places,
// for example "19.99" or "0.00". This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// setAmount sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("amount %s cannot be negative", amount))
	}

	m.amount = amount.Round(MoneyScale)
	return nil
}
