// Package movementtest holds the behaviour every movement.Log backend must share.
package movementtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/movement"
)

// RunLogContract checks an empty log: ordering, duplicates, failure records
// and validation. newLog must return a fresh, empty log on every call.
func RunLogContract(t *testing.T, newLog func(t *testing.T) movement.Log) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		got, err := newLog(t).Records(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Append Order", func(t *testing.T) {
		log := newLog(t)
		want := []movement.Record{
			movement.Success(3, 2, 6),
			movement.Failure(4, 9, movement.ReasonUnknownDestination),
			movement.Success(3, 2, 6),
			movement.Success(5, 0, 0.5),
			movement.Failure(3, 1, "blocked; detour closed"),
		}
		for _, r := range want {
			require.NoError(t, log.Append(ctx, r))
		}

		got, err := log.Records(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got, "duplicates kept, order preserved")
	})

	t.Run("Rejects Invalid", func(t *testing.T) {
		log := newLog(t)
		bad := []movement.Record{
			{VehicleID: 1, DestinationNodeID: 2, Status: "pending"},
			{VehicleID: 1, DestinationNodeID: 2, Status: movement.StatusSuccess, FailReason: "why"},
			movement.Failure(1, 2, "two\nlines"),
		}
		for _, r := range bad {
			err := log.Append(ctx, r)
			assert.ErrorIs(t, err, movement.ErrInvalidRecord)
			assert.True(t, errkind.Is(err, errkind.ErrValidation))
		}
		got, err := log.Records(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
