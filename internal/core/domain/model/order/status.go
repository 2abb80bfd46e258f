package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit transition table to ensure orders follow the
// correct business workflow.
//
// State transitions:
//
//	Pending ──────> Processing
//	   │                │
//	   └──> Cancelled <─┘
//
// Completed is terminal and is only ever assigned by the external
// fulfillment collaborator; no action in this core reaches it. Cancelled
// is terminal except that cancelling again is an idempotent no-op.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of a plainly created order.
	// No payment method is required yet.
	Pending

	// Processing indicates the order went through checkout: it carries a
	// payment method and a pending payment.
	Processing

	// Completed indicates the order was fulfilled. Terminal; assigned only
	// by the external fulfillment collaborator.
	Completed

	// Cancelled indicates the order was cancelled. Terminal apart from
	// repeated cancellation, which is accepted as a no-op.
	Cancelled
)

// Action is a lifecycle operation evaluated against the transition table.
type Action int

const (
	// ActionUpdate re-validates and recomputes an order in place.
	ActionUpdate Action = iota + 1

	// ActionProcess moves a freshly created order into checkout.
	ActionProcess

	// ActionCancel cancels an order.
	ActionCancel
)

// transitions maps (current status, action) to the resulting status.
// A missing entry means the action is not allowed from that status.
var transitions = map[Status]map[Action]Status{
	Pending: {
		ActionUpdate:  Pending,
		ActionProcess: Processing,
		ActionCancel:  Cancelled,
	},
	Processing: {
		ActionUpdate: Processing,
		ActionCancel: Cancelled,
	},
	Cancelled: {
		// Repeated cancellation is an idempotent no-op.
		ActionCancel: Cancelled,
	},
	Completed: {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Processing:    "Processing",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUpdate:  "update",
		ActionProcess: "process",
		ActionCancel:  "cancel",
	}
}

// Validate checks whether the Status value is one of the defined states.
// Used when reconstructing orders from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further lifecycle mutation is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Apply evaluates an action against the transition table.
//
// Returns the resulting status, or an InvalidStateTransitionError when
// the action is not permitted from the current status.
func (s Status) Apply(action Action) (Status, error) {
	next, ok := transitions[s][action]
	if !ok {
		return UnknownStatus, errs.NewInvalidStateTransitionError(
			getActionStrings()[action], s.String())
	}
	return next, nil
}
