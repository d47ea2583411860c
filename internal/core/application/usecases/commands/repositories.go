// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends on the narrowest interface that covers the aggregates
// it touches, so tests can mock exactly what a handler uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// MediaStoreFactory provides access to the media store within a transaction.
	MediaStoreFactory interface {
		MediaStore() ports.MediaStore
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// RegistrationUoW manages the customer-plus-account write of self registration.
	RegistrationUoW interface {
		TxManager
		CustomerRepoFactory
		AccountRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// AvatarUoW manages the media-plus-customer write of avatar uploads.
	AvatarUoW interface {
		TxManager
		CustomerRepoFactory
		MediaStoreFactory
	}

	// AvatarUoWFactory creates new avatar unit of work instances.
	AvatarUoWFactory interface {
		Create() AvatarUoW
	}

	// PlacementUoW manages order placement: customer check, stock deduction
	// and order insert must commit or roll back as one.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   products := uow.ProductRepository()
	//   orders := uow.OrderRepository()
	//   // ... lock stock rows, deduct, insert order
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// OrderStatusUoW manages status transitions: restock, status write and
	// audit append happen in one transaction.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		AuditRepoFactory
	}

	// OrderStatusUoWFactory creates new order status unit of work instances.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}
)
