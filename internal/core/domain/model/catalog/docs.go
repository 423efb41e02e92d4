// Package catalog holds product categories and products.
//
// A Product keeps its own copy of the Category it was created in. Changing
// the category later does not touch existing products.
package catalog
