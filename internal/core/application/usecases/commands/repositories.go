// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	RoleBindingRepoFactory interface {
		RoleBindingRepository() ports.RoleBindingRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	ShippingRepoFactory interface {
		ShippingRepository() ports.ShippingRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// UserUoW is used by AddUser.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// RoleBindingUoW is used by AddRoleBinding, which reads users and writes bindings.
	RoleBindingUoW interface {
		TxManager
		UserRepoFactory
		RoleBindingRepoFactory
	}

	RoleBindingUoWFactory interface {
		Create() RoleBindingUoW
	}

	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// ProductUoW resolves the category and seller before writing the product.
	ProductUoW interface {
		TxManager
		CategoryRepoFactory
		RoleBindingRepoFactory
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	WarehouseUoW interface {
		TxManager
		RoleBindingRepoFactory
		WarehouseRepoFactory
	}

	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW spans every collection an order placement reads or writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customers := uow.RoleBindingRepository()
	//   products := uow.ProductRepository()
	//   // ... validate, then write shipping, payment, stock and order
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		RoleBindingRepoFactory
		ProductRepoFactory
		PaymentRepoFactory
		ShippingRepoFactory
		OrderRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)

// asReference turns a not-found lookup of a required related entity into a
// ReferenceError. Other errors pass through unchanged.
func asReference(err error, entity, key string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewReferenceErrorWithCause(entity, key, err)
	}
	return err
}
