package catalog

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable item.
//
// Invariants:
//   - price is a non-negative Money
//   - stock never goes below zero
//   - category is an owned snapshot taken when the product was created
type Product struct {
	id       string
	name     string
	price    kernel.Money
	category Category
	stock    int
	status   Status
	sellerID string
	guard    guard.ConstructorGuard
}

// NewProduct validates and assembles a product. The same constructor is used
// when loading products back from storage.
//
// Example:
//
//	cat, _ := catalog.NewCategory("CAT001", "Electronics", "Gadgets")
//	price, _ := kernel.MoneyFromString("999.99")
//	p, err := catalog.NewProduct("P001", "Laptop", price, cat, 50, catalog.Available, "S001")
func NewProduct(
	id, name string,
	price kernel.Money,
	category Category,
	stock int,
	status Status,
	sellerID string,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
		p.setStock(stock),
		p.setStatus(status),
		p.setSellerID(sellerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) Category() Category  { return p.category }
func (p *Product) StockQuantity() int  { return p.stock }
func (p *Product) Status() Status      { return p.status }
func (p *Product) SellerID() string    { return p.sellerID }

// CanReserve reports whether quantity units can be taken from stock.
func (p *Product) CanReserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.stock < quantity {
		return errs.NewInsufficientStockError(p.id, quantity, p.stock)
	}
	return nil
}

// Reserve takes quantity units from stock. Status is left as is.
func (p *Product) Reserve(quantity int) error {
	if err := p.CanReserve(quantity); err != nil {
		return err
	}
	p.stock -= quantity
	return nil
}

func (p *Product) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("productid")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productname")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockquantity is invalid", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

func (p *Product) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Product) setSellerID(sellerID string) error {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return errs.NewValueIsRequiredError("sellerid")
	}
	p.sellerID = sellerID
	return nil
}
