// Package ports defines repository interfaces for the back office domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer permanently. Orders referencing the customer
	// are kept; read models tolerate the dangling reference.
	Delete(ctx context.Context, id kernel.UUID) error
}
