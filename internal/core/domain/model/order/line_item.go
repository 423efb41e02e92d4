package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"marketplace/internal/pkg/errs"
)

// LineItem is one product and the quantity ordered.
type LineItem struct {
	productID string
	quantity  int
}

func NewLineItem(productID string, quantity int) (LineItem, error) {
	productID = strings.TrimSpace(productID)

	var errList []error
	if productID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productid"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{productID: productID, quantity: quantity}, nil
}

// NewLineItems zips parallel product and quantity slices into line items.
// Unequal lengths and empty input are rejected before any item is built.
func NewLineItems(productIDs []string, quantities []int) ([]LineItem, error) {
	if len(productIDs) != len(quantities) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"line items are invalid",
			fmt.Errorf("%d product ids but %d quantities", len(productIDs), len(quantities)),
		)
	}
	if len(productIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("line items")
	}

	items := make([]LineItem, 0, len(productIDs))
	var errList []error
	for i := range productIDs {
		item, err := NewLineItem(productIDs[i], quantities[i])
		if err != nil {
			errList = append(errList, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return items, nil
}

func (l LineItem) ProductID() string { return l.productID }
func (l LineItem) Quantity() int     { return l.quantity }

// IsZero reports whether l is the zero LineItem.
func (l LineItem) IsZero() bool {
	return l.productID == "" && l.quantity == 0
}

// Demand sums quantities per product and returns them sorted by product id.
// Placements lock product rows in this order, so two orders naming the same
// products in different sequences cannot deadlock each other.
func Demand(items []LineItem) []LineItem {
	index := make(map[string]int, len(items))
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.productID]; ok {
			out[i].quantity += item.quantity
			continue
		}
		index[item.productID] = len(out)
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b LineItem) int {
		return strings.Compare(a.productID, b.productID)
	})
	return out
}
