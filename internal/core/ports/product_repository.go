package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row until the enclosing
	// transaction ends (SELECT ... FOR UPDATE). Order placement reads stock
	// through this method so that two concurrent orders against the same
	// low-stock product cannot both pass validation.
	//
	// Must be called inside an active unit of work transaction; outside one
	// the lock has no effect.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product permanently. Existing order lines keep their
	// snapshots, so history is unaffected.
	Delete(ctx context.Context, id kernel.UUID) error
}
