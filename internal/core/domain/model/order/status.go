package order

import (
	"fmt"
	"time"

	"quickbite/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a single forward path to ensure orders follow the fulfillment
// workflow.
//
// State transitions:
//
//	Received ──> Preparing ──> OutForDelivery ──> Delivered
//
// Delivered is terminal. The manual override entry point on the lifecycle
// engine deliberately bypasses this ordering (operators may correct a
// mislabeled order), but every status written through it must still be a
// valid Status value.
//
// Status is a value object that validates state transitions and provides
// the wire representations used in API payloads and event streams.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned when an order is created.
	Received

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is the terminal state; no further transitions are scheduled.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Received:       "Order Received",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:       "Order Received",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// StatusFromString parses a Status from its wire representation
// (e.g. "Out for Delivery"). Returns an error for unrecognized values.
// This function is used when accepting status overrides from clients.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Preparing, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns "Order Received", "Preparing", "Out for Delivery", or "Delivered"
// for valid statuses and "Unknown" for invalid values. It implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further lifecycle transitions happen after
// this status. Streams observing an order close once a terminal snapshot has
// been delivered.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the status that follows s on the fulfillment path.
//
// Valid transitions:
//   - Received -> Preparing
//   - Preparing -> OutForDelivery
//   - OutForDelivery -> Delivered
//
// Returns an error for Delivered (terminal) and for invalid statuses.
func (s Status) Next() (Status, error) {
	switch s {
	case Received:
		return Preparing, nil
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s has no next status", s.String()))
	}
}

// ProgressionStep describes one automatic lifecycle transition: the target
// status and its delay relative to order creation time.
type ProgressionStep struct {
	Offset time.Duration
	Target Status
}

// ProgressionSteps returns the automatic fulfillment timeline applied to
// every new order. Each step fires once; steps are never cancelled by manual
// status overrides.
func ProgressionSteps() []ProgressionStep {
	return []ProgressionStep{
		{Offset: 5 * time.Second, Target: Preparing},
		{Offset: 10 * time.Second, Target: OutForDelivery},
		{Offset: 15 * time.Second, Target: Delivered},
	}
}
