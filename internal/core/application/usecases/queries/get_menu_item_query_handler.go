package queries

import (
	"context"

	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/core/ports"
)

// GetMenuItemQueryHandler serves single menu item lookups from the catalog.
type GetMenuItemQueryHandler struct {
	catalog ports.MenuCatalog
}

// NewGetMenuItemQueryHandler creates a handler for menu item lookups.
func NewGetMenuItemQueryHandler(catalog ports.MenuCatalog) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{catalog: catalog}
}

// Handle returns the menu item, or an error wrapping menu.ErrItemNotFound
// when the identifier does not resolve.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (menu.Item, error) {
	if err := query.Validate(); err != nil {
		return menu.Item{}, err
	}
	return h.catalog.Find(ctx, query.MenuItemID())
}
