package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCatalogViewQueryIsNotConstructed = errors.New(
	"CatalogViewQuery must be created via NewCatalogViewQuery constructor",
)

// DefaultCatalogCategories is the category allowlist used when none is given.
var DefaultCatalogCategories = []string{"Electronics", "Appliances"}

// CatalogViewQuery lists available products whose category name is in the
// allowlist, sorted by category then product name.
type CatalogViewQuery struct {
	categories []string

	guard guard.ConstructorGuard
}

func NewCatalogViewQuery(categories []string) CatalogViewQuery {
	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, DefaultCatalogCategories...)
	}
	return CatalogViewQuery{categories: cleaned, guard: guard.NewConstructorGuard()}
}

func (q CatalogViewQuery) Validate() error {
	return q.guard.Validate(ErrCatalogViewQueryIsNotConstructed)
}

func (q CatalogViewQuery) Categories() []string {
	return append([]string(nil), q.categories...)
}

type CatalogViewQueryResponse struct {
	ProductID           string          `json:"productid"`
	ProductName         string          `json:"productname"`
	Price               decimal.Decimal `json:"price"`
	Status              string          `json:"status"`
	Category            string          `json:"category"`
	CategoryDescription string          `json:"category_description"`
}
