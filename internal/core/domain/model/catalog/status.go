package catalog

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the availability of a product.
type Status int

const (
	UnknownStatus Status = iota
	Available
	OutOfStock
)

// Stored spellings. "out of stock" is what existing documents contain.
const (
	availableString  = "available"
	outOfStockString = "out of stock"
	outOfStockAlias  = "out_of_stock"
)

// AllowedStatuses lists the spellings a stored product status may take.
// New rows are written as "out of stock"; rows written elsewhere may carry
// the "out_of_stock" alias.
func AllowedStatuses() []string {
	return []string{availableString, outOfStockString, outOfStockAlias}
}

// ParseStatus accepts the stored spelling and the "out_of_stock" alias.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case availableString:
		return Available, nil
	case outOfStockString, outOfStockAlias:
		return OutOfStock, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not one of %v", s, AllowedStatuses()),
		)
	}
}

func (s Status) Validate() error {
	if s != Available && s != OutOfStock {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Available:
		return availableString
	case OutOfStock:
		return outOfStockString
	default:
		return "unknown"
	}
}
