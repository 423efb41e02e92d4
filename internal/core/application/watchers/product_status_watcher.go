package watchers

import (
	"context"
	"slices"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ProductStatusWatcher flags products whose stored status is not one of
// catalog.AllowedStatuses. Matching is exact, so "Available" is a violation
// while both "out of stock" and "out_of_stock" pass.
type ProductStatusWatcher struct{}

func NewProductStatusWatcher() ProductStatusWatcher {
	return ProductStatusWatcher{}
}

func (ProductStatusWatcher) Name() string { return "product_status" }

func (ProductStatusWatcher) Accepts(change ports.Change) bool {
	return change.Collection == ports.CollectionProducts &&
		change.Operation != ports.OperationDelete &&
		change.Product != nil
}

func (ProductStatusWatcher) Inspect(_ context.Context, change ports.Change) error {
	allowed := catalog.AllowedStatuses()
	if slices.Contains(allowed, change.Product.Status) {
		return nil
	}
	return errs.NewDomainViolationError(
		ports.CollectionProducts, change.Key, "status", change.Product.Status, allowed,
	)
}
