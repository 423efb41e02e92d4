package catalog

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category was not built by NewCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category is both a stored reference entity and the snapshot embedded in
// products, so it is a plain value.
type Category struct {
	id          string
	name        string
	description string
	guard       guard.ConstructorGuard
}

func NewCategory(id, name, description string) (Category, error) {
	c := Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return Category{}, err
	}
	c.description = strings.TrimSpace(description)

	return c, nil
}

func (c Category) Validate() error {
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c Category) ID() string          { return c.id }
func (c Category) Name() string        { return c.name }
func (c Category) Description() string { return c.description }

func (c *Category) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("categoryid")
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("categoryname")
	}
	c.name = name
	return nil
}
