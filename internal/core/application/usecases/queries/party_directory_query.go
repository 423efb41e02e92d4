package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var ErrPartyDirectoryQueryIsNotConstructed = errors.New(
	"PartyDirectoryQuery must be created via NewPartyDirectoryQuery constructor",
)

// DefaultDirectoryCities is used when no city is given.
var DefaultDirectoryCities = []string{"Gaborone", "Francistown"}

// PartyDirectoryQuery lists customers and sellers living in the given
// cities as one directory sorted by city, then name.
type PartyDirectoryQuery struct {
	cities []string

	guard guard.ConstructorGuard
}

func NewPartyDirectoryQuery(cities []string) PartyDirectoryQuery {
	cleaned := make([]string, 0, len(cities))
	for _, c := range cities {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, DefaultDirectoryCities...)
	}
	return PartyDirectoryQuery{cities: cleaned, guard: guard.NewConstructorGuard()}
}

func (q PartyDirectoryQuery) Validate() error {
	return q.guard.Validate(ErrPartyDirectoryQueryIsNotConstructed)
}

func (q PartyDirectoryQuery) Cities() []string {
	return append([]string(nil), q.cities...)
}

// PartyDirectoryQueryResponse is one customer or seller. UserType is
// "Customer" or "Seller"; ID is the customer or seller id.
type PartyDirectoryQueryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	UserType string `json:"user_type"`
	City     string `json:"city"`
}
