// Package services provides domain services for rules that span more than one
// aggregate.
//
// The package includes:
//   - OrderPricer: prices line items against products and checks that a
//     payment covers the order cost
//
// OrderPricer is used synchronously while an order is being placed and again by
// the watchers that audit orders after they are committed.
package services
