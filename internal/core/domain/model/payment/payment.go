// Package payment models the payment that is created together with an order
// and embedded into it as a snapshot.
package payment

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not built by NewPayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a value: the copy stored inside an order is independent of the
// payments collection row.
type Payment struct {
	id     string
	amount kernel.Money
	status Status
	guard  guard.ConstructorGuard
}

func NewPayment(id string, amount kernel.Money, status Status) (Payment, error) {
	p := Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setAmount(amount),
		p.setStatus(status),
	); err != nil {
		return Payment{}, err
	}

	return p, nil
}

func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p Payment) ID() string           { return p.id }
func (p Payment) Amount() kernel.Money { return p.amount }
func (p Payment) Status() Status       { return p.status }

func (p *Payment) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("paymentid")
	}
	p.id = id
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	p.amount = amount
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
