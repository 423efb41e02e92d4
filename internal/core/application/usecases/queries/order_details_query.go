package queries

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrOrderDetailsQueryIsNotConstructed = errors.New(
	"OrderDetailsQuery must be created via NewOrderDetailsQuery constructor",
)

// OrderDetailsQuery lists orders placed by customers living in one district,
// newest first.
//
// Example:
//
//	query, _ := NewOrderDetailsQuery("SE")
//	rows, err := NewOrderDetailsQueryHandler(db).Handle(ctx, query)
type OrderDetailsQuery struct {
	district string

	guard guard.ConstructorGuard
}

func NewOrderDetailsQuery(district string) (OrderDetailsQuery, error) {
	district = strings.TrimSpace(district)
	if district == "" {
		return OrderDetailsQuery{}, errs.NewValueIsRequiredError("district")
	}
	return OrderDetailsQuery{district: district, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrOrderDetailsQueryIsNotConstructed)
}

func (q OrderDetailsQuery) District() string { return q.district }

// OrderDetailsQueryResponse is one order joined to its customer, payment and
// shipping. Payment and shipping fields are nil when the referenced record
// does not exist.
type OrderDetailsQueryResponse struct {
	OrderID        string    `json:"orderid"`
	OrderDate      time.Time `json:"orderdate"`
	OrderStatus    string    `json:"order_status"`
	CustomerName   string    `json:"customer_name"`
	CustomerCity   string    `json:"customer_city"`
	PaymentStatus  *string   `json:"payment_status"`
	TrackingNo     *string   `json:"trackingno"`
	ShippingStatus *string   `json:"shipping_status"`
	ShippingCity   *string   `json:"shipping_city"`
}
