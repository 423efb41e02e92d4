package shipping

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the delivery status of a shipment.
type Status string

const (
	Pending   Status = "pending"
	Shipped   Status = "shipped"
	Delivered Status = "delivered"
	Returned  Status = "returned"
)

// ParseStatus normalizes s and checks it against the known delivery statuses.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Shipped, Delivered, Returned:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"deliverystatus is invalid",
			fmt.Errorf("%q is not a valid delivery status", string(s)),
		)
	}
}

func (s Status) String() string {
	return string(s)
}
