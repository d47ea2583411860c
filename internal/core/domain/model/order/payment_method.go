package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// PaymentMethod represents how an order is paid for.
// It is a closed enumeration; values from external sources must be parsed
// with PaymentMethodFromString and validated before use.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	// This value (0) helps catch uninitialized PaymentMethod values.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCash is payment on delivery or at the counter.
	// It is the default when no method is specified.
	PaymentMethodCash

	// PaymentMethodCard is payment by credit or debit card.
	PaymentMethodCard

	// PaymentMethodTransfer is payment by bank transfer.
	PaymentMethodTransfer
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their
// string representations. All methods are included for string conversion.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:  "Unknown",
		PaymentMethodCash:     "Cash",
		PaymentMethodCard:     "Card",
		PaymentMethodTransfer: "Transfer",
	}
}

// getValidPaymentMethodStrings returns a map of only valid PaymentMethod values.
func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentMethodCash:     "Cash",
		PaymentMethodCard:     "Card",
		PaymentMethodTransfer: "Transfer",
	}
}

// PaymentMethodFromString parses a payment method from its string representation.
// Valid inputs are exactly "Cash", "Card", and "Transfer".
//
// Returns:
//   - (PaymentMethod, nil) for a recognized method name
//   - (PaymentMethodUnknown, error) otherwise
func PaymentMethodFromString(value string) (PaymentMethod, error) {
	for method, name := range getValidPaymentMethodStrings() {
		if name == value {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod is invalid",
		fmt.Errorf("%q is not a valid payment method", value))
}

// Validate checks if the PaymentMethod value is valid.
//
// Returns:
//   - nil if the method is valid
//   - error with details if the method is invalid
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod is invalid",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the payment method.
// This method implements the fmt.Stringer interface and is safe to call
// on any PaymentMethod value, including invalid ones.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
