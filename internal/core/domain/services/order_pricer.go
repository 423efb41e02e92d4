package services

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentTolerance is the largest accepted difference between a payment
// amount and the computed order cost.
var PaymentTolerance = decimal.New(1, -2)

// OrderPricer computes order cost from product prices.
//
// Business rules:
//   - cost is Σ(price × quantity) over every line item
//   - every line must reference a known product
//   - a payment matches when it is within PaymentTolerance of the cost
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	if err := pricer.CheckPayment(o.ID().String(), o.Payment().Amount(), o.Lines(), products); err != nil {
//	    // errors.Is(err, errs.ErrPaymentMismatch) or errs.ErrReference
//	}
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Total returns the cost of lines. products is keyed by product id; a line
// whose product is missing yields a ReferenceError.
func (OrderPricer) Total(lines []order.LineItem, products map[string]*catalog.Product) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		p, ok := products[line.ProductID()]
		if !ok || p == nil {
			return kernel.Money{}, errs.NewReferenceError("product", line.ProductID())
		}
		total = total.Add(p.Price().Times(line.Quantity()))
	}
	return total, nil
}

// CheckPayment returns a PaymentMismatchError when amount differs from the
// cost of lines by more than PaymentTolerance. orderID may be empty before
// the order has been minted.
func (p OrderPricer) CheckPayment(
	orderID string,
	amount kernel.Money,
	lines []order.LineItem,
	products map[string]*catalog.Product,
) error {
	total, err := p.Total(lines, products)
	if err != nil {
		return err
	}
	if !amount.WithinTolerance(total, PaymentTolerance) {
		return errs.NewPaymentMismatchError(orderID, amount.Amount(), total.Amount())
	}
	return nil
}
