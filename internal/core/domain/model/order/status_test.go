package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing, order.Completed, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, order.UnknownStatus.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Processing", order.Processing.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.UnknownStatus.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Apply(t *testing.T) {
	type transition struct {
		name    string
		from    order.Status
		action  order.Action
		want    order.Status
		allowed bool
	}

	cases := []transition{
		{"pending_update", order.Pending, order.ActionUpdate, order.Pending, true},
		{"pending_process", order.Pending, order.ActionProcess, order.Processing, true},
		{"pending_cancel", order.Pending, order.ActionCancel, order.Cancelled, true},
		{"processing_update", order.Processing, order.ActionUpdate, order.Processing, true},
		{"processing_cancel", order.Processing, order.ActionCancel, order.Cancelled, true},
		{"processing_process_again", order.Processing, order.ActionProcess, order.UnknownStatus, false},
		{"cancelled_cancel_is_noop", order.Cancelled, order.ActionCancel, order.Cancelled, true},
		{"cancelled_update", order.Cancelled, order.ActionUpdate, order.UnknownStatus, false},
		{"cancelled_process", order.Cancelled, order.ActionProcess, order.UnknownStatus, false},
		{"completed_update", order.Completed, order.ActionUpdate, order.UnknownStatus, false},
		{"completed_cancel", order.Completed, order.ActionCancel, order.UnknownStatus, false},
		{"unknown_cancel", order.UnknownStatus, order.ActionCancel, order.UnknownStatus, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.from.Apply(tc.action)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.want, next)
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		})
	}
}
