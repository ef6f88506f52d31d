// Package menu contains the read-only menu catalog types.
//
// Menu items are supplied by the catalog collaborator and are never mutated
// by the ordering core; orders snapshot the name and price of each item they
// reference at creation time.
package menu

import "errors"

var (
	// ErrItemNotFound is returned when a menu item identifier does not
	// resolve in the catalog.
	ErrItemNotFound = errors.New("menu item not found")

	// ErrItemUnavailable is returned when a menu item resolves but is
	// currently marked unavailable for ordering.
	ErrItemUnavailable = errors.New("menu item is not available")
)

// Item is one entry of the menu catalog. It is externally supplied reference
// data: the ordering core only reads it, keyed by ID.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Available   bool
}

// Filter narrows down catalog listings.
type Filter struct {
	// Category filters by category name, case-insensitive. Empty matches all.
	Category string

	// Page is the 1-based page number. Values below 1 are clamped to 1.
	Page int

	// Limit is the page size, clamped to [1, 50]. Zero selects the default
	// of 10.
	Limit int
}

// Page holds one page of catalog items together with pagination metadata.
type Page struct {
	Items []Item
	Total int
	Page  int
	Limit int
}
