package queries

import (
	"errors"

	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves one page of available menu items, optionally
// filtered by category. Pagination values are carried as-is; the catalog
// clamps them to its supported range.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	filter menu.Filter

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu listing query.
func NewGetMenuQuery(filter menu.Filter) GetMenuQuery {
	return GetMenuQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetMenuQuery) Filter() menu.Filter {
	return q.filter
}
