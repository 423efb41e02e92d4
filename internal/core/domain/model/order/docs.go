// Package order contains the Order aggregate root and its value objects.
//
// An Order is created once, atomically with its payment and shipment, and is
// append-only afterwards: the only permitted change is moving its Status one
// step forward along pending → processing → shipped → delivered.
//
// Line items form a single ordered slice of LineItem values. The parallel
// product/quantity arrays accepted at the API edge are converted with
// NewLineItems, which rejects unequal lengths before anything else happens.
//
// Order identifiers look like ORD-20250530-000001: the UTC date of placement
// followed by a sequence value padded to six digits.
package order
