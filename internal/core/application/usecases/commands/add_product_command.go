package commands

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand describes a product to list. The category is given by
// key; the handler copies the stored category into the product.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID  string
	name       string
	price      kernel.Money
	categoryID string
	stock      int
	status     catalog.Status
	sellerID   string

	guard guard.ConstructorGuard
}

func NewAddProductCommand(
	productID, name string,
	price kernel.Money,
	categoryID string,
	stock int,
	status catalog.Status,
	sellerID string,
) (AddProductCommand, error) {
	cmd := AddProductCommand{
		productID: productID,
		name:      name,
		sellerID:  sellerID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrice(price),
		cmd.setCategoryID(categoryID),
		cmd.setStock(stock),
		cmd.setStatus(status),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) ProductID() string      { return c.productID }
func (c AddProductCommand) Name() string           { return c.name }
func (c AddProductCommand) Price() kernel.Money    { return c.price }
func (c AddProductCommand) CategoryID() string     { return c.categoryID }
func (c AddProductCommand) StockQuantity() int     { return c.stock }
func (c AddProductCommand) Status() catalog.Status { return c.status }
func (c AddProductCommand) SellerID() string       { return c.sellerID }

func (c *AddProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *AddProductCommand) setCategoryID(categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return errs.NewValueIsRequiredError("categoryid")
	}
	c.categoryID = categoryID
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockquantity is invalid", fmt.Errorf("%d is negative", stock))
	}
	c.stock = stock
	return nil
}

func (c *AddProductCommand) setStatus(status catalog.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
