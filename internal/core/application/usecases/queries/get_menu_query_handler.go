package queries

import (
	"context"

	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/core/ports"
)

// GetMenuQueryHandler serves menu listings from the catalog.
type GetMenuQueryHandler struct {
	catalog ports.MenuCatalog
}

// NewGetMenuQueryHandler creates a handler for menu listings.
func NewGetMenuQueryHandler(catalog ports.MenuCatalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle returns one page of available menu items.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (menu.Page, error) {
	if err := query.Validate(); err != nil {
		return menu.Page{}, err
	}
	return h.catalog.List(ctx, query.Filter())
}
