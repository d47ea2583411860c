package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/media"
)

// MediaStore defines the persistence contract for uploaded binary files.
type MediaStore interface {
	// Add persists a new file.
	Add(ctx context.Context, file *media.File) error

	// Get retrieves a file by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such file exists.
	Get(ctx context.Context, id kernel.UUID) (*media.File, error)
}
