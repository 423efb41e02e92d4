package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSalesRollupQueryIsNotConstructed = errors.New(
	"SalesRollupQuery must be created via NewSalesRollupQuery constructor",
)

// SalesRollupQuery totals completed-payment sales per (category, order
// status) with subtotal rows per category, per status and overall.
type SalesRollupQuery struct {
	guard guard.ConstructorGuard
}

func NewSalesRollupQuery() SalesRollupQuery {
	return SalesRollupQuery{guard: guard.NewConstructorGuard()}
}

func (q SalesRollupQuery) Validate() error {
	return q.guard.Validate(ErrSalesRollupQueryIsNotConstructed)
}

// SalesRollupQueryResponse is one rollup row. CategoryGrouping is 1 when the
// row aggregates over all categories, StatusGrouping is 1 when it aggregates
// over all statuses; the matching field is then nil. OrderCount counts line
// items and TotalSales sums price times quantity.
type SalesRollupQueryResponse struct {
	Category         *string         `json:"category"`
	OrderStatus      *string         `json:"order_status"`
	OrderCount       int64           `json:"order_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	CategoryGrouping int             `json:"category_grouping"`
	StatusGrouping   int             `json:"status_grouping"`
}

// IsGrandTotal reports whether the row aggregates everything.
func (r SalesRollupQueryResponse) IsGrandTotal() bool {
	return r.CategoryGrouping == 1 && r.StatusGrouping == 1
}
