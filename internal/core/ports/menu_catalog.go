package ports

import (
	"context"

	"quickbite/internal/core/domain/model/menu"
)

// MenuCatalog is the read-only catalog lookup the ordering core consumes.
// The catalog itself lives outside the core; orders only resolve items
// against it at creation time.
type MenuCatalog interface {
	// Find resolves a menu item by its identifier. Returns an error wrapping
	// menu.ErrItemNotFound when the identifier is unknown.
	Find(ctx context.Context, id string) (menu.Item, error)

	// List returns one page of currently available items, optionally
	// filtered by category.
	List(ctx context.Context, filter menu.Filter) (menu.Page, error)

	// Categories returns the distinct category names of the catalog in
	// first-seen order.
	Categories(ctx context.Context) ([]string, error)
}
