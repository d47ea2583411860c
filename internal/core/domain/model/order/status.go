package order

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// ErrInvalidStatusTransition indicates that a requested status change is not
// allowed by the order lifecycle. Callers can match it with errors.Is to
// distinguish a rejected transition from other validation failures.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created   -> Paid, Shipped, Cancelled
//	Paid      -> Shipped, Cancelled
//	Shipped   -> Paid
//	Cancelled -> (terminal)
//
// Any transition not listed is rejected without mutating state.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// The order is awaiting payment or shipment.
	Created

	// Paid indicates the order has been paid for.
	Paid

	// Shipped indicates the order has been handed over for delivery.
	// A shipped order may revert to Paid when a shipment is returned.
	Shipped

	// Cancelled indicates the order was cancelled and its stock restored.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// getAllowedTransitions returns the fixed transition table of the order lifecycle.
// A transition is allowed when the target status is present in the set keyed by
// the current status.
func getAllowedTransitions() map[Status]map[Status]bool {
	//nolint:exhaustive // Unknown has no transitions by definition
	return map[Status]map[Status]bool{
		Created:   {Paid: true, Shipped: true, Cancelled: true},
		Paid:      {Shipped: true, Cancelled: true},
		Shipped:   {Paid: true},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its string representation.
//
// Valid inputs are exactly "Created", "Paid", "Shipped", and "Cancelled".
// Any other value, including "Unknown", yields an error. This function is
// used when accepting status values from external callers.
//
// Returns:
//   - (Status, nil) for a recognized status name
//   - (Unknown, error) otherwise
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Paid, Shipped, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Created", "Paid", "Shipped", or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Cancelled is the only terminal status.
func (s Status) IsTerminal() bool {
	return len(getAllowedTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to target. Invalid statuses on either side yield false.
//
// This method provides transition validation without side effects, useful
// for pre-validation and business logic checks.
//
// Example:
//
//	if !status.CanTransitionTo(order.Cancelled) {
//	    // Reject the request
//	}
func (s Status) CanTransitionTo(target Status) bool {
	targets, ok := getAllowedTransitions()[s]
	if !ok {
		return false
	}
	return targets[target]
}

// TransitionTo transitions the status to target according to the fixed table.
//
// Valid transitions:
//   - Created -> Paid, Shipped, Cancelled
//   - Paid -> Shipped, Cancelled
//   - Shipped -> Paid (shipment returned)
//
// Invalid transitions, including anything out of Cancelled and self
// transitions, are rejected.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, error) wrapping ErrInvalidStatusTransition if the transition
//     is not allowed, or a validation error if either status is invalid
//
// This method is used by Order.ChangeStatus to enforce state transitions.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Paid)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}
