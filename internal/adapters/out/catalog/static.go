// Package catalog provides the static in-memory menu catalog consumed by
// the ordering core. The catalog is read-only reference data; availability
// and prices only change with a redeploy.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

var _ ports.MenuCatalog = (*StaticCatalog)(nil)

// StaticCatalog serves menu lookups from a fixed item list. Item order is
// preserved from the seed, which also fixes the first-seen order of
// categories.
type StaticCatalog struct {
	items []menu.Item
}

// NewStaticCatalog creates a catalog over the given items. Passing nil
// seeds the default menu.
func NewStaticCatalog(items []menu.Item) *StaticCatalog {
	if items == nil {
		items = defaultMenu()
	}
	return &StaticCatalog{items: items}
}

// Find resolves a menu item by its identifier.
func (c *StaticCatalog) Find(_ context.Context, id string) (menu.Item, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return menu.Item{}, fmt.Errorf("menu item %q: %w", id, menu.ErrItemNotFound)
}

// List returns one page of available items, optionally filtered by category
// (case-insensitive). Page numbers below 1 are clamped to 1 and the limit is
// clamped to [1, 50] with a default of 10, so malformed pagination input
// degrades instead of failing.
func (c *StaticCatalog) List(_ context.Context, filter menu.Filter) (menu.Page, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filtered := make([]menu.Item, 0, len(c.items))
	for _, item := range c.items {
		if !item.Available {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(item.Category, filter.Category) {
			continue
		}
		filtered = append(filtered, item)
	}

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return menu.Page{
		Items: filtered[start:end],
		Total: len(filtered),
		Page:  page,
		Limit: limit,
	}, nil
}

// Categories returns the distinct category names in first-seen order,
// including categories whose items are all currently unavailable.
func (c *StaticCatalog) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{}, len(c.items))
	categories := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories, nil
}

// defaultMenu seeds the catalog used when no explicit item list is given.
func defaultMenu() []menu.Item {
	return []menu.Item{
		{ID: "1", Name: "Margherita Pizza", Description: "Tomato, mozzarella, fresh basil", Price: 10.00, Image: "/images/margherita.jpg", Category: "Pizza", Available: true},
		{ID: "2", Name: "Pepperoni Pizza", Description: "Pepperoni, mozzarella, tomato sauce", Price: 12.50, Image: "/images/pepperoni.jpg", Category: "Pizza", Available: true},
		{ID: "3", Name: "Quattro Formaggi", Description: "Four cheese blend on a white base", Price: 13.75, Image: "/images/quattro.jpg", Category: "Pizza", Available: false},
		{ID: "4", Name: "Classic Cheeseburger", Description: "Beef patty, cheddar, pickles, house sauce", Price: 9.25, Image: "/images/cheeseburger.jpg", Category: "Burgers", Available: true},
		{ID: "5", Name: "Smash Double", Description: "Two smashed patties, american cheese, onions", Price: 11.90, Image: "/images/smash.jpg", Category: "Burgers", Available: true},
		{ID: "6", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons, caesar dressing", Price: 8.40, Image: "/images/caesar.jpg", Category: "Salads", Available: true},
		{ID: "7", Name: "Greek Salad", Description: "Cucumber, tomato, feta, olives", Price: 7.95, Image: "/images/greek.jpg", Category: "Salads", Available: true},
		{ID: "8", Name: "Garlic Bread", Description: "Toasted baguette with garlic butter", Price: 4.50, Image: "/images/garlicbread.jpg", Category: "Sides", Available: true},
		{ID: "9", Name: "Tiramisu", Description: "Espresso-soaked ladyfingers, mascarpone", Price: 6.80, Image: "/images/tiramisu.jpg", Category: "Desserts", Available: true},
		{ID: "10", Name: "Lemonade", Description: "Fresh squeezed, lightly sweetened", Price: 3.20, Image: "/images/lemonade.jpg", Category: "Drinks", Available: true},
		{ID: "11", Name: "Cold Brew", Description: "Slow steeped, served over ice", Price: 4.10, Image: "/images/coldbrew.jpg", Category: "Drinks", Available: false},
	}
}
