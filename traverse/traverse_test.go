package traverse_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/transitnet/traverse"
)

func TestAborted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	assert.True(t, traverse.Aborted(ctx, traverse.ErrStop))
	assert.True(t, traverse.Aborted(ctx, fmt.Errorf("hook: %w", traverse.ErrStop)))
	assert.False(t, traverse.Aborted(ctx, context.Canceled), "live context")
	assert.False(t, traverse.Aborted(ctx, assert.AnError))

	cancel()
	assert.True(t, traverse.Aborted(ctx, context.Canceled))
	assert.False(t, traverse.Aborted(ctx, assert.AnError))
}

func TestCopies(t *testing.T) {
	in := []int{1, 2, 3}
	snap := traverse.Snapshot(in)
	rev := traverse.Reversed(in)
	in[0] = 9

	assert.Equal(t, []int{1, 2, 3}, snap)
	assert.Equal(t, []int{3, 2, 1}, rev)
}
