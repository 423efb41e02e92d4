package user

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the part a user plays in the marketplace.
type Role int

const (
	// UnknownRole is the zero value and is never valid.
	UnknownRole Role = iota
	Customer
	Seller
	Employee
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Customer:    "customer",
		Seller:      "seller",
		Employee:    "employee",
	}
}

// ParseRole maps the stored spelling back to a Role.
func ParseRole(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if r != UnknownRole && str == strings.ToLower(strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if r != Customer && r != Seller && r != Employee {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
