// Package watchers checks committed writes to products and orders against
// invariants the store itself cannot enforce.
//
// A watcher never undoes a write. A violation becomes a ports.Alert that the
// Supervisor logs, publishes and hands to subscribers.
//
// # Watchers
//
//  1. ProductStatusWatcher - product status outside the allowed spellings
//  2. OrderDeletionWatcher - any order delete (orders are append-only)
//  3. OrderInsertWatcher - payment amount not matching the cost of the lines
package watchers

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Watcher inspects one committed change.
//
// Inspect returns nil when the change is fine. A returned violation error
// (DomainViolation, ImmutabilityViolation, PaymentMismatch or Reference)
// becomes an alert; any other error is logged only.
type Watcher interface {
	Name() string
	Accepts(change ports.Change) bool
	Inspect(ctx context.Context, change ports.Change) error
}

// alertKind maps a violation error to its alert kind.
func alertKind(err error) (ports.AlertKind, bool) {
	switch {
	case errors.Is(err, errs.ErrDomainViolation):
		return ports.AlertDomainViolation, true
	case errors.Is(err, errs.ErrImmutabilityViolation):
		return ports.AlertImmutabilityViolation, true
	case errors.Is(err, errs.ErrPaymentMismatch):
		return ports.AlertPaymentMismatch, true
	case errors.Is(err, errs.ErrReference):
		return ports.AlertReference, true
	default:
		return "", false
	}
}
