package order

import (
	"fmt"

	"quickbite/internal/pkg/errs"
	"quickbite/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"LineItem must be created via NewLineItem",
)

// LineItem is one position of an order. Name and unit price are snapshotted
// from the menu catalog at order-creation time: later catalog price changes
// never retroactively affect existing orders.
type LineItem struct {
	menuItemID string
	name       string
	price      float64
	quantity   int

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item from a catalog snapshot.
//
// Parameters:
//   - menuItemID: the catalog identifier the item was resolved from
//   - name: the item name at resolution time
//   - price: the unit price at resolution time (non-negative)
//   - quantity: ordered amount, at least 1
func NewLineItem(menuItemID, name string, price float64, quantity int) (LineItem, error) {
	if menuItemID == "" {
		return LineItem{}, errs.NewValueIsRequiredError("menuItemID")
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", price))
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return LineItem{
		menuItemID: menuItemID,
		name:       name,
		price:      price,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuItemID returns the catalog identifier the item references.
func (li LineItem) MenuItemID() string {
	return li.menuItemID
}

// Name returns the snapshotted item name.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the snapshotted unit price.
func (li LineItem) Price() float64 {
	return li.price
}

// Quantity returns the ordered amount.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price multiplied by quantity, unrounded.
func (li LineItem) Subtotal() float64 {
	return li.price * float64(li.quantity)
}
