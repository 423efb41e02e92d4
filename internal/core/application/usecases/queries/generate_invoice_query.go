// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for one report each and never write.
package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGenerateInvoiceQueryIsNotConstructed = errors.New(
	"GenerateInvoiceQuery must be created via NewGenerateInvoiceQuery constructor",
)

// InvoiceRepositories is the read access invoice generation needs. A unit of
// work that was never begun satisfies it on the root connection.
type InvoiceRepositories interface {
	OrderRepository() ports.OrderRepository
	RoleBindingRepository() ports.RoleBindingRepository
	UserRepository() ports.UserRepository
	ShippingRepository() ports.ShippingRepository
	ProductRepository() ports.ProductRepository
}

type InvoiceRepositoriesFactory interface {
	Create() InvoiceRepositories
}

// GenerateInvoiceQuery asks for the invoice of every order whose id starts
// with OrderIDPrefix. Several stored orders may make up one logical order.
//
// Example:
//
//	query, err := NewGenerateInvoiceQuery("ORD-20250530-000001")
//	text := handler.Handle(ctx, query)
type GenerateInvoiceQuery struct {
	orderIDPrefix string

	guard guard.ConstructorGuard
}

func NewGenerateInvoiceQuery(orderIDPrefix string) (GenerateInvoiceQuery, error) {
	orderIDPrefix = strings.TrimSpace(orderIDPrefix)
	if orderIDPrefix == "" {
		return GenerateInvoiceQuery{}, errs.NewValueIsRequiredError("orderid")
	}
	return GenerateInvoiceQuery{
		orderIDPrefix: orderIDPrefix,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GenerateInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGenerateInvoiceQueryIsNotConstructed)
}

func (q GenerateInvoiceQuery) OrderIDPrefix() string {
	return q.orderIDPrefix
}
