package pgtest

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// SeedMarketplace writes the baseline data most suites start from:
//
//   - user U001 (customer, Gaborone SE) bound as customer C001
//   - user U002 (seller, Francistown NE) bound as seller S001
//   - category CAT001 Electronics
//   - product P001 Laptop at 999.99, stock 50, available, sold by S001
func (d *Database) SeedMarketplace(ctx context.Context) error {
	uow := postgres.NewGormUnitOfWorkFactory(d.DB).Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerAddr, err := kernel.NewAddress("7 Kgale View", "Gaborone", "SE")
	if err != nil {
		return err
	}
	sellerAddr, err := kernel.NewAddress("12 Blue Jacket St", "Francistown", "NE")
	if err != nil {
		return err
	}

	alice, err := user.NewUser("U001", "Alice Molefe", "alice@example.com", "+26771000001", customerAddr, user.Customer)
	if err != nil {
		return err
	}
	bob, err := user.NewUser("U002", "Bob Kgosi", "bob@example.com", "+26771000002", sellerAddr, user.Seller)
	if err != nil {
		return err
	}
	customer, err := user.NewBinding(user.Customer, "C001", "U001")
	if err != nil {
		return err
	}
	seller, err := user.NewBinding(user.Seller, "S001", "U002")
	if err != nil {
		return err
	}

	electronics, err := catalog.NewCategory("CAT001", "Electronics", "Devices and gadgets")
	if err != nil {
		return err
	}
	price, err := kernel.MoneyFromString("999.99")
	if err != nil {
		return err
	}
	laptop, err := catalog.NewProduct("P001", "Laptop", price, electronics, 50, catalog.Available, "S001")
	if err != nil {
		return err
	}

	if err = errors.Join(
		uow.UserRepository().Add(ctx, alice),
		uow.UserRepository().Add(ctx, bob),
		uow.RoleBindingRepository().Add(ctx, customer),
		uow.RoleBindingRepository().Add(ctx, seller),
		uow.CategoryRepository().Add(ctx, electronics),
		uow.ProductRepository().Add(ctx, laptop),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
