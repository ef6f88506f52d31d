package commands

import (
	"errors"
	"time"

	"quickbite/internal/pkg/guard"
)

var (
	ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
		"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
	)
	ErrAdvanceTimeIsRequired = errors.New("advance time is required")
)

// AdvanceOrdersCommand triggers one sweep of the automatic progression: all
// transitions whose fire time is at or before Now are applied. The
// progression job issues one of these per tick; tests issue them with a
// chosen timestamp instead of waiting on the wall clock.
type AdvanceOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a sweep command for the given point in
// time.
func NewAdvanceOrdersCommand(now time.Time) (AdvanceOrdersCommand, error) {
	if now.IsZero() {
		return AdvanceOrdersCommand{}, ErrAdvanceTimeIsRequired
	}

	return AdvanceOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrdersCommandIsNotConstructed if validation fails.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}

// Now returns the sweep timestamp.
func (c AdvanceOrdersCommand) Now() time.Time {
	return c.now
}
