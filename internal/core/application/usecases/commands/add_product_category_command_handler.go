package commands

import "context"

type AddProductCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewAddProductCategoryCommandHandler(uowFactory CategoryUoWFactory) AddProductCategoryCommandHandler {
	return AddProductCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddProductCategoryCommandHandler) Handle(ctx context.Context, cmd AddProductCategoryCommand) error {
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

	if err := uow.CategoryRepository().Add(ctx, cmd.Category()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
