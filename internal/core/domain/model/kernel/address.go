package kernel

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not built by NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is a postal address. All three parts are required.
//
// Example:
//
//	addr, err := kernel.NewAddress("123 Mogoma St", "Gaborone", "SE")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(addr) // 123 Mogoma St, Gaborone, SE
type Address struct { //nolint:recvcheck //using for validation
	street   string
	city     string
	district string
	guard    guard.ConstructorGuard
}

// NewAddress creates an Address. Surrounding whitespace is trimmed and every
// part must be non-empty afterwards.
func NewAddress(street, city, district string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setDistrict(district),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate reports whether the address was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// District returns the district.
func (a Address) District() string {
	return a.district
}

// IsEqual compares addresses part by part.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.district == other.district
}

// String formats the address as "street, city, district".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.street, a.city, a.district)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setDistrict(district string) error {
	district = strings.TrimSpace(district)
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	a.district = district
	return nil
}
