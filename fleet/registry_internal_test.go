package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func states(r *Registry, idx ...int) []slotState {
	out := make([]slotState, len(idx))
	for i, x := range idx {
		out[i] = r.slots[x].state
	}
	return out
}

func TestFindSlot_TombstoneKeepsChain(t *testing.T) {
	r := NewRegistry()
	// 1, 102 and 203 all hash to slot 1.
	for _, id := range []int{1, 102, 203} {
		require.NoError(t, r.Add(id, "P", "bus", 0, NoDestination))
	}
	assert.Equal(t, []slotState{slotActive, slotActive, slotActive, slotEmpty}, states(r, 1, 2, 3, 4))

	require.NoError(t, r.Remove(102))
	assert.Equal(t, slotTombstone, r.slots[2].state)
	assert.Equal(t, 102, r.slots[2].vehicle.ID, "tombstone keeps the id")

	match, free := r.findSlot(203)
	assert.Equal(t, 3, match, "probe passes the tombstone")
	assert.Equal(t, 2, free)

	match, free = r.findSlot(304)
	assert.Equal(t, -1, match)
	assert.Equal(t, 2, free, "first tombstone is preferred over the terminating empty slot")

	require.NoError(t, r.Add(304, "Q", "van", 0, NoDestination))
	assert.Equal(t, slotActive, r.slots[2].state)
	assert.Equal(t, 304, r.slots[2].vehicle.ID)
}

func TestFindSlot_EmptyTable(t *testing.T) {
	r := NewRegistry(WithSize(7))
	match, free := r.findSlot(10)
	assert.Equal(t, -1, match)
	assert.Equal(t, 3, free)
}

func TestFindSlot_WrapsAround(t *testing.T) {
	r := NewRegistry(WithSize(5))
	require.NoError(t, r.Add(4, "A", "bus", 0, NoDestination))
	require.NoError(t, r.Add(9, "B", "bus", 0, NoDestination))
	assert.Equal(t, 9, r.slots[0].vehicle.ID)

	match, _ := r.findSlot(9)
	assert.Equal(t, 0, match)
}
