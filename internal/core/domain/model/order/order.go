package order

import (
	"errors"
	"math"
	"time"

	"quickbite/internal/core/domain/model/kernel"

	"quickbite/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoLineItems is returned when an order is created without any line
	// items.
	ErrNoLineItems = errs.NewValueIsRequiredError("order must contain at least one line item")
)

// Order represents a customer food order. It is the aggregate root that
// carries the order through its fulfillment lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Has at least one line item; line items and delivery details are fixed
//     at creation and never change afterwards
//   - totalAmount is always the rounded sum of its line items and is never
//     edited independently
//   - createdAt is set once; updatedAt changes on every mutation
//   - Only status and updatedAt mutate after creation
//   - Can only be created through the NewOrder constructor
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// items is the ordered sequence of line items, snapshotted at creation
	items []LineItem

	// deliveryDetails is the immutable recipient information
	deliveryDetails DeliveryDetails

	// status is the current state in the fulfillment lifecycle
	status Status

	// totalAmount is the sum of price*quantity over items, rounded to cents
	totalAmount float64

	// createdAt is the creation timestamp, never changed
	createdAt time.Time

	// updatedAt is bumped on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a valid Order.
//
// The order starts in Received status with createdAt = updatedAt = now and
// totalAmount computed from the line items.
//
// Parameters:
//   - id: unique identifier assigned by the store
//   - items: at least one validated line item
//   - details: validated delivery details
//   - now: creation timestamp
func NewOrder(id kernel.OrderID, items []LineItem, details DeliveryDetails, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return nil, err
		}
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	var total float64
	for _, li := range items {
		total += li.Subtotal()
	}

	return &Order{
		id:              id,
		items:           append([]LineItem(nil), items...),
		deliveryDetails: details,
		status:          Received,
		totalAmount:     roundAmount(total),
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Items returns a copy of the order's line items in their original sequence.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// DeliveryDetails returns the recipient information.
func (o *Order) DeliveryDetails() DeliveryDetails {
	return o.deliveryDetails
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total, rounded to two decimal places.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus overwrites the order status and bumps updatedAt.
//
// The new status must be a valid Status value, but no transition-order check
// is performed here: this is the entry point shared by the automatic
// progression (whose targets are generated in lifecycle order) and the
// manual override path, which is allowed to move an order anywhere an
// operator needs it.
func (o *Order) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = now
	return nil
}

// Clone returns a deep copy of the order. Snapshots handed to subscribers
// and API responses are clones, so later mutations of the stored order never
// show through a snapshot already delivered.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = append([]LineItem(nil), o.items...)
	return &clone
}

// roundAmount rounds a currency amount to two decimal places.
func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
