package commands

import (
	"context"
	"errors"

	"quickbite/internal/core/ports"

	"quickbite/internal/pkg/errs"
)

// AdvanceOrdersCommandHandler applies due automatic transitions. Each
// transition re-reads its order from the repository at fire time rather than
// using a copy captured at scheduling time, sets the target status, persists,
// and publishes the new snapshot.
//
// Transitions fire unconditionally: a manual override issued between
// scheduled firings is silently overwritten by the next one. A transition
// whose order cannot be found is skipped.
type AdvanceOrdersCommandHandler struct {
	orders      ports.OrderRepository
	broadcaster ports.OrderBroadcaster
	schedule    ports.TransitionSchedule
}

// NewAdvanceOrdersCommandHandler creates a handler for progression sweeps.
func NewAdvanceOrdersCommandHandler(
	orders ports.OrderRepository,
	broadcaster ports.OrderBroadcaster,
	schedule ports.TransitionSchedule,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		orders:      orders,
		broadcaster: broadcaster,
		schedule:    schedule,
	}
}

// Handle drains every transition due at the command's timestamp, in fire-time
// order, and applies them. A failing transition does not stop the sweep;
// failures are joined into the returned error.
func (h AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var failures []error
	for _, transition := range h.schedule.Due(cmd.Now()) {
		current, err := h.orders.Get(ctx, transition.OrderID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			failures = append(failures, err)
			continue
		}

		if err = current.ChangeStatus(transition.Target, cmd.Now()); err != nil {
			failures = append(failures, err)
			continue
		}
		if err = h.orders.Update(ctx, current); err != nil {
			failures = append(failures, err)
			continue
		}

		h.broadcaster.Publish(current.ID(), current.Clone())
	}

	return errors.Join(failures...)
}
