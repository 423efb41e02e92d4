package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AlertKind classifies an invariant violation.
type AlertKind string

const (
	AlertDomainViolation       AlertKind = "domain_violation"
	AlertImmutabilityViolation AlertKind = "immutability_violation"
	AlertPaymentMismatch       AlertKind = "payment_mismatch"
	AlertReference             AlertKind = "reference"
)

// Alert is a violation detected after the offending write was committed.
// Nothing is rolled back.
type Alert struct {
	ID         uuid.UUID
	Kind       AlertKind
	Source     string
	Collection string
	Key        string
	Err        error
	DetectedAt time.Time
}

// Message is the text of the underlying error.
func (a Alert) Message() string {
	if a.Err == nil {
		return ""
	}
	return a.Err.Error()
}

// AlertPublisher delivers alerts to an external sink.
type AlertPublisher interface {
	Publish(ctx context.Context, alert Alert) error
}
