// Package errs provides standardized error types for the marketplace service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Validation errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a lookup by key matched nothing
//
// Marketplace errors:
//   - ReferenceError: a related entity required by an operation does not exist
//   - DuplicateKeyError: a natural key is already taken
//   - InsufficientStockError: a line item asks for more than is in stock
//   - DomainViolationError, ImmutabilityViolationError, PaymentMismatchError:
//     invariant breaches detected on committed data
//
// Each error type follows the same shape: a sentinel error variable, a struct
// carrying the details, constructor functions, an Error method and an Unwrap
// method returning the sentinel so callers can classify with errors.Is.
package errs
