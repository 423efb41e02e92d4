package watchers

import (
	"context"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// OrderDeletionWatcher flags every order delete.
type OrderDeletionWatcher struct{}

func NewOrderDeletionWatcher() OrderDeletionWatcher {
	return OrderDeletionWatcher{}
}

func (OrderDeletionWatcher) Name() string { return "order_deletion" }

func (OrderDeletionWatcher) Accepts(change ports.Change) bool {
	return change.Collection == ports.CollectionOrders && change.Operation == ports.OperationDelete
}

func (OrderDeletionWatcher) Inspect(_ context.Context, change ports.Change) error {
	return errs.NewImmutabilityViolationError(ports.CollectionOrders, change.Key, "orders are append-only")
}
