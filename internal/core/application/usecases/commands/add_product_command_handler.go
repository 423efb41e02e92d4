package commands

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/user"
)

// AddProductCommandHandler lists a product under an existing category and
// seller.
//
// Failures:
//   - errs.ReferenceError("category") when the category does not exist
//   - errs.ReferenceError("seller") when the seller does not exist
//   - errs.DuplicateKeyError when the productid is taken
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	category, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID())
	if err != nil {
		return asReference(err, "category", cmd.CategoryID())
	}

	if _, err = uow.RoleBindingRepository().Get(ctx, user.Seller, cmd.SellerID()); err != nil {
		return asReference(err, "seller", cmd.SellerID())
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Price(),
		category,
		cmd.StockQuantity(),
		cmd.Status(),
		cmd.SellerID(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
