// Package order contains the Order aggregate and its value objects.
//
// The aggregate models a customer food order: an immutable set of line
// items priced at creation time, immutable delivery details, and a status
// that advances through the fulfillment lifecycle
// (Received -> Preparing -> OutForDelivery -> Delivered).
//
// All types validate themselves on construction. Post-creation mutation is
// limited to ChangeStatus, which also bumps the updatedAt timestamp.
package order
