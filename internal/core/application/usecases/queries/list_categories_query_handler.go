package queries

import (
	"context"

	"quickbite/internal/core/ports"
)

// ListCategoriesQueryHandler serves category listings from the catalog.
type ListCategoriesQueryHandler struct {
	catalog ports.MenuCatalog
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(catalog ports.MenuCatalog) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{catalog: catalog}
}

// Handle returns the distinct category names in first-seen order.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.catalog.Categories(ctx)
}
