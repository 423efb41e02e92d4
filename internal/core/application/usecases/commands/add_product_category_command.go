package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/pkg/guard"
)

var ErrAddProductCategoryCommandIsNotConstructed = errors.New(
	"AddProductCategoryCommand must be created via NewAddProductCategoryCommand constructor",
)

// AddProductCategoryCommand carries an already validated category.
type AddProductCategoryCommand struct {
	category catalog.Category

	guard guard.ConstructorGuard
}

func NewAddProductCategoryCommand(categoryID, name, description string) (AddProductCategoryCommand, error) {
	category, err := catalog.NewCategory(categoryID, name, description)
	if err != nil {
		return AddProductCategoryCommand{}, err
	}

	return AddProductCategoryCommand{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AddProductCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCategoryCommandIsNotConstructed)
}

func (c AddProductCategoryCommand) Category() catalog.Category {
	return c.category
}
