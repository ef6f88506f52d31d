package ports

import (
	"time"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
)

// ScheduledTransition is one pending automatic status change: at FireAt the
// order identified by OrderID moves to Target, whatever its status is then.
type ScheduledTransition struct {
	OrderID kernel.OrderID
	FireAt  time.Time
	Target  order.Status
}

// TransitionSchedule holds the pending one-shot transitions registered when
// orders are created. Transitions stay queued until their fire time has
// passed; they are never cancelled, not even by manual status overrides.
//
// Implementations must be safe for concurrent use.
type TransitionSchedule interface {
	// Add queues a pending transition.
	Add(transition ScheduledTransition)

	// Due removes and returns every transition whose fire time is at or
	// before now, ordered by fire time.
	Due(now time.Time) []ScheduledTransition

	// Len reports the number of pending transitions.
	Len() int
}
