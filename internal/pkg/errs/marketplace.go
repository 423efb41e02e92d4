package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrReference             = errors.New("referenced entity not found")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrDomainViolation       = errors.New("domain violation")
	ErrImmutabilityViolation = errors.New("immutability violation")
	ErrPaymentMismatch       = errors.New("payment amount does not match order cost")
)

// ReferenceError reports a related entity that must exist but does not.
// Entity names the kind of the missing entity ("customer", "product", ...).
type ReferenceError struct {
	Entity string
	Key    string
	Cause  error
}

func NewReferenceError(entity, key string) *ReferenceError {
	return &ReferenceError{Entity: entity, Key: key}
}

func NewReferenceErrorWithCause(entity, key string, cause error) *ReferenceError {
	return &ReferenceError{Entity: entity, Key: key, Cause: cause}
}

func (e *ReferenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrReference, e.Entity, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrReference, e.Entity, e.Key)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReference
}

// DuplicateKeyError reports a natural key that is already taken in Collection.
type DuplicateKeyError struct {
	Collection string
	Key        string
	Cause      error
}

func NewDuplicateKeyError(collection, key string) *DuplicateKeyError {
	return &DuplicateKeyError{Collection: collection, Key: key}
}

func NewDuplicateKeyErrorWithCause(collection, key string, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{Collection: collection, Key: key, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrDuplicateKey, e.Collection, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrDuplicateKey, e.Collection, e.Key)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// InsufficientStockError reports a line item asking for more than is on hand.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func NewInsufficientStockError(productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// DomainViolationError reports a committed value outside its allowed domain.
type DomainViolationError struct {
	Collection string
	Key        string
	Field      string
	Value      string
	Allowed    []string
}

func NewDomainViolationError(collection, key, field, value string, allowed []string) *DomainViolationError {
	return &DomainViolationError{
		Collection: collection,
		Key:        key,
		Field:      field,
		Value:      value,
		Allowed:    allowed,
	}
}

func (e *DomainViolationError) Error() string {
	return fmt.Sprintf("%s: %s %s has %s %q, must be one of [%s]",
		ErrDomainViolation, e.Collection, e.Key, e.Field, sanitize(e.Value), strings.Join(e.Allowed, ", "))
}

func (e *DomainViolationError) Unwrap() error {
	return ErrDomainViolation
}

// ImmutabilityViolationError reports a mutation of an append-only document.
type ImmutabilityViolationError struct {
	Collection string
	Key        string
	Reason     string
}

func NewImmutabilityViolationError(collection, key, reason string) *ImmutabilityViolationError {
	return &ImmutabilityViolationError{
		Collection: collection,
		Key:        key,
		Reason:     reason,
	}
}

func (e *ImmutabilityViolationError) Error() string {
	return fmt.Sprintf("%s: %s (%s %s)", ErrImmutabilityViolation, e.Reason, e.Collection, e.Key)
}

func (e *ImmutabilityViolationError) Unwrap() error {
	return ErrImmutabilityViolation
}

// PaymentMismatchError reports a payment amount that differs from the
// order cost by more than the allowed tolerance.
type PaymentMismatchError struct {
	OrderID  string
	Amount   decimal.Decimal
	Expected decimal.Decimal
}

func NewPaymentMismatchError(orderID string, amount, expected decimal.Decimal) *PaymentMismatchError {
	return &PaymentMismatchError{
		OrderID:  orderID,
		Amount:   amount,
		Expected: expected,
	}
}

func (e *PaymentMismatchError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("%s: amount %s, expected %s",
			ErrPaymentMismatch, e.Amount.StringFixed(2), e.Expected.StringFixed(2))
	}
	return fmt.Sprintf("%s: order %s amount %s, expected %s",
		ErrPaymentMismatch, e.OrderID, e.Amount.StringFixed(2), e.Expected.StringFixed(2))
}

func (e *PaymentMismatchError) Unwrap() error {
	return ErrPaymentMismatch
}
