// Package ports defines the contracts between the marketplace core and its
// infrastructure: repositories, the unit of work, the sequence generator, the
// change feed that drives the watchers and the alert publisher.
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
// Repositories returned after Begin are bound to the transaction; repositories
// returned without Begin run directly on the root connection.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	RoleBindingRepository() RoleBindingRepository
	CategoryRepository() CategoryRepository
	ProductRepository() ProductRepository
	PaymentRepository() PaymentRepository
	ShippingRepository() ShippingRepository
	OrderRepository() OrderRepository
	WarehouseRepository() WarehouseRepository
}
