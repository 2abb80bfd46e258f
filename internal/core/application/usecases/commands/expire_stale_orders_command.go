package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand requests cancellation of every Pending order
// created at or before the cutoff. Issued by the background expiry job.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire stale orders.
// The cutoff must be a real point in time.
func NewExpireStaleOrdersCommand(cutoff time.Time) (ExpireStaleOrdersCommand, error) {
	cmd := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if cutoff.IsZero() {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	cmd.cutoff = cutoff
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the point in time before which Pending orders expire.
func (c ExpireStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
