package ports

import (
	"context"

	"backoffice/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for login accounts.
type AccountRepository interface {
	// Add persists a new account. The email column is unique, so adding a
	// duplicate email fails.
	Add(ctx context.Context, aggregate *account.Account) error

	// GetByEmail retrieves an account by its normalized email.
	// Returns errs.ObjectNotFoundError when no such account exists.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
