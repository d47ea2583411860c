package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// active transaction, so multi-aggregate writes (order plus stock plus audit)
// commit or roll back as one.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AccountRepository returns an AccountRepository bound to the current transaction.
	AccountRepository() AccountRepository

	// AuditRepository returns an AuditRepository bound to the current transaction.
	AuditRepository() AuditRepository

	// MediaStore returns a MediaStore bound to the current transaction.
	MediaStore() MediaStore
}
