// Package shipping models the shipment record created with every order.
package shipping

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrShippingIsNotConstructed is returned when a Shipping was not built by NewShipping.
var ErrShippingIsNotConstructed = errors.New("Shipping must be created via NewShipping constructor")

// Shipping is a shipment destination and its delivery status.
type Shipping struct {
	id         string
	trackingNo string
	status     Status
	address    kernel.Address
	guard      guard.ConstructorGuard
}

func NewShipping(id, trackingNo string, status Status, address kernel.Address) (*Shipping, error) {
	s := &Shipping{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNo(trackingNo),
		s.setStatus(status),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipping) Validate() error {
	if s == nil {
		return ErrShippingIsNotConstructed
	}
	return s.guard.Validate(ErrShippingIsNotConstructed)
}

func (s *Shipping) ID() string              { return s.id }
func (s *Shipping) TrackingNo() string      { return s.trackingNo }
func (s *Shipping) Status() Status          { return s.status }
func (s *Shipping) Address() kernel.Address { return s.address }

func (s *Shipping) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("shippingid")
	}
	s.id = id
	return nil
}

func (s *Shipping) setTrackingNo(trackingNo string) error {
	trackingNo = strings.TrimSpace(trackingNo)
	if trackingNo == "" {
		return errs.NewValueIsRequiredError("trackingno")
	}
	s.trackingNo = trackingNo
	return nil
}

func (s *Shipping) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipping) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}
