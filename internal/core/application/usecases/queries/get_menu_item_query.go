package queries

import (
	"errors"

	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single menu item by its catalog identifier.
type GetMenuItemQuery struct { //nolint:recvcheck //using for validation
	menuItemID string

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a menu item lookup query.
func NewGetMenuItemQuery(menuItemID string) (GetMenuItemQuery, error) {
	if menuItemID == "" {
		return GetMenuItemQuery{}, errs.NewValueIsRequiredError("menuItemID")
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuItemQueryIsNotConstructed if validation fails.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemID returns the catalog identifier being looked up.
func (q GetMenuItemQuery) MenuItemID() string {
	return q.menuItemID
}
