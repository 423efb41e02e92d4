package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - Must have a well formed ID
//   - References a customer and a shipment by natural key
//   - Carries its own payment snapshot
//   - Has at least one line item, every quantity positive
//   - Status only moves forward, one step at a time
//
// Nothing else about an order can change once it is created.
type Order struct {
	// id is the ORD-YYYYMMDD-NNNNNN identifier
	id ID

	// placedAt is the start time of the placing transaction
	placedAt time.Time

	// status is the current lifecycle state
	status Status

	customerID string
	shippingID string

	// payment is an owned copy; later changes to the payments collection do
	// not reach it
	payment payment.Payment

	lines []LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order.
//
// Parameters:
//   - id: minted identifier, see NewID
//   - placedAt: start time of the placing transaction
//   - customerID: key of an existing customer
//   - p: the payment created alongside the order
//   - shippingID: key of the shipment created alongside the order
//   - lines: at least one line item
//
// Example:
//
//	lines, _ := order.NewLineItems([]string{"P001"}, []int{1})
//	id, _ := order.NewID(now, 1)
//	o, err := order.NewOrder(id, now, "C001", pay, "S1", lines)
func NewOrder(
	id ID,
	placedAt time.Time,
	customerID string,
	p payment.Payment,
	shippingID string,
	lines []LineItem,
) (*Order, error) {
	return RestoreOrder(id, placedAt, Pending, customerID, p, shippingID, lines)
}

// RestoreOrder rebuilds an order loaded from storage in any valid status.
func RestoreOrder(
	id ID,
	placedAt time.Time,
	status Status,
	customerID string,
	p payment.Payment,
	shippingID string,
	lines []LineItem,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedAt(placedAt),
		o.setStatus(status),
		o.setCustomerID(customerID),
		o.setPayment(p),
		o.setShippingID(shippingID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() ID                   { return o.id }
func (o *Order) PlacedAt() time.Time      { return o.placedAt }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CustomerID() string       { return o.customerID }
func (o *Order) ShippingID() string       { return o.shippingID }
func (o *Order) Payment() payment.Payment { return o.payment }

// Lines returns a copy of the line items in their original order.
func (o *Order) Lines() []LineItem {
	return slices.Clone(o.lines)
}

// Advance moves the order to the next status.
//
// Returns an error, leaving the order unchanged, when it is already Delivered.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderdate")
	}
	o.placedAt = placedAt.UTC()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerid")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPayment(p payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.payment = p
	return nil
}

func (o *Order) setShippingID(shippingID string) error {
	shippingID = strings.TrimSpace(shippingID)
	if shippingID == "" {
		return errs.NewValueIsRequiredError("shippingid")
	}
	o.shippingID = shippingID
	return nil
}

func (o *Order) setLines(lines []LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, l := range lines {
		if l.IsZero() {
			return errs.NewValueIsInvalidError("line item must be created via NewLineItem")
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}
