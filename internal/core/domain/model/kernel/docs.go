// Package kernel provides the value objects shared by every marketplace aggregate.
//
// The package includes:
//   - Address: a street/city/district triple used by users and shipments
//   - Money: a non-negative decimal amount used for prices and payments
//
// Both are immutable and can only be obtained through their constructors;
// zero values fail Validate.
package kernel
