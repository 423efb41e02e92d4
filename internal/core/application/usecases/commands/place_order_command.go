package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/shipping"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a request to place one order.
//
// Product ids and quantities arrive as parallel slices and are zipped into
// line items here, so a length mismatch is rejected before any store access.
//
// Example:
//
//	amount, _ := kernel.MoneyFromString("999.99")
//	pay, _ := payment.NewPayment("PAY1", amount, payment.Pending)
//	ship, _ := shipping.NewShipping("S1", "TRK0001", shipping.Pending, addr)
//	cmd, err := NewPlaceOrderCommand("C001", []string{"P001"}, []int{1}, pay, ship)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []order.LineItem
	payment    payment.Payment
	shipping   *shipping.Shipping

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	customerID string,
	productIDs []string,
	quantities []int,
	p payment.Payment,
	s *shipping.Shipping,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLines(productIDs, quantities),
		cmd.setPayment(p),
		cmd.setShipping(s),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() string           { return c.customerID }
func (c PlaceOrderCommand) Lines() []order.LineItem      { return c.lines }
func (c PlaceOrderCommand) Payment() payment.Payment     { return c.payment }
func (c PlaceOrderCommand) Shipping() *shipping.Shipping { return c.shipping }

func (c *PlaceOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerid")
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setLines(productIDs []string, quantities []int) error {
	lines, err := order.NewLineItems(productIDs, quantities)
	if err != nil {
		return err
	}
	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setPayment(p payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.payment = p
	return nil
}

func (c *PlaceOrderCommand) setShipping(s *shipping.Shipping) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.shipping = s
	return nil
}
