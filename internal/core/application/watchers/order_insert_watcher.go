package watchers

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// OrderInsertWatcher recomputes the cost of a newly inserted order from the
// current product prices and compares it with the payment snapshot.
//
// Every line item counts, so a multi-line order is checked in full. A line
// whose product no longer exists is a ReferenceError. Prices are read at
// inspection time, which for a live change is right after the commit.
type OrderInsertWatcher struct {
	products ports.ProductRepository
}

func NewOrderInsertWatcher(products ports.ProductRepository) (OrderInsertWatcher, error) {
	if products == nil {
		return OrderInsertWatcher{}, errs.NewValueIsRequiredError("products")
	}
	return OrderInsertWatcher{products: products}, nil
}

func (OrderInsertWatcher) Name() string { return "order_insert" }

func (OrderInsertWatcher) Accepts(change ports.Change) bool {
	return change.Collection == ports.CollectionOrders &&
		change.Operation == ports.OperationInsert &&
		change.Order != nil
}

func (w OrderInsertWatcher) Inspect(ctx context.Context, change ports.Change) error {
	doc := change.Order

	cache := make(map[string]*catalog.Product, len(doc.Lines))
	total := kernel.ZeroMoney()
	for _, line := range doc.Lines {
		p, ok := cache[line.ProductID]
		if !ok {
			var err error
			p, err = w.products.Get(ctx, line.ProductID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewReferenceErrorWithCause("product", line.ProductID, err)
			}
			if err != nil {
				return fmt.Errorf("load product %s: %w", line.ProductID, err)
			}
			cache[line.ProductID] = p
		}
		total = total.Add(p.Price().Times(line.Quantity))
	}

	if doc.PaymentAmount.Sub(total.Amount()).Abs().GreaterThan(services.PaymentTolerance) {
		return errs.NewPaymentMismatchError(change.Key, doc.PaymentAmount, total.Amount())
	}
	return nil
}
