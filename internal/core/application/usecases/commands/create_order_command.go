package commands

import (
	"errors"
	"fmt"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrNoItemsSelected is returned when a creation request carries an
	// empty item list.
	ErrNoItemsSelected = errors.New("order must contain at least one item")

	// ErrInvalidQuantity is returned when a requested quantity is below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrMenuItemIDIsRequired is returned when a selection has no menu item
	// identifier.
	ErrMenuItemIDIsRequired = errors.New("menu item ID is required")
)

// ItemSelection is one requested order position: a menu item reference and
// the desired quantity. Name and price are not part of the request; they are
// snapshotted from the catalog when the order is created.
type ItemSelection struct {
	MenuItemID string
	Quantity   int
}

// CreateOrderCommand represents a validated request to place a food order.
// Delivery details are fully validated at construction time; menu item
// references are only resolved by the handler, which owns the catalog.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    []ItemSelection{{MenuItemID: "1", Quantity: 2}},
//	    "Ada Lovelace", "12 Analytical Row", "5550100200",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items           []ItemSelection
	deliveryDetails order.DeliveryDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. It validates
// that at least one item is selected, that every selection names a menu item
// with a quantity of at least 1, and that the delivery details satisfy the
// domain rules (trimmed, name >= 2 chars, address >= 5 chars, 10-digit
// phone). Returns an error if any validation fails; nothing is stored until
// the handler runs.
func NewCreateOrderCommand(
	items []ItemSelection,
	recipientName, address, phone string,
) (CreateOrderCommand, error) {
	if len(items) == 0 {
		return CreateOrderCommand{}, ErrNoItemsSelected
	}
	for _, sel := range items {
		if sel.MenuItemID == "" {
			return CreateOrderCommand{}, ErrMenuItemIDIsRequired
		}
		if sel.Quantity < 1 {
			return CreateOrderCommand{}, fmt.Errorf("menu item %q: %w", sel.MenuItemID, ErrInvalidQuantity)
		}
	}

	details, err := order.NewDeliveryDetails(recipientName, address, phone)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		items:           append([]ItemSelection(nil), items...),
		deliveryDetails: details,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the requested item selections.
func (c CreateOrderCommand) Items() []ItemSelection {
	return append([]ItemSelection(nil), c.items...)
}

// DeliveryDetails returns the validated recipient information.
func (c CreateOrderCommand) DeliveryDetails() order.DeliveryDetails {
	return c.deliveryDetails
}
