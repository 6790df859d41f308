// Package dijkstra_test contains unit tests for the ShortestPath implementation,
// covering validation, tie-breaking, options and hooks.
package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dijkstra"
	"github.com/katalvlaran/transitnet/errkind"
)

const eps = 1e-9

// triangle: 0→1 (3.5), 1→2 (2.8), 0→2 (6.2); plus unreachable node 3.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []int{0, 1, 2, 3} {
		require.NoError(t, g.AddNode(id, "stop"))
	}
	require.NoError(t, g.AddEdge(0, 1, 3.5))
	require.NoError(t, g.AddEdge(1, 2, 2.8))
	require.NoError(t, g.AddEdge(0, 2, 6.2))
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := dijkstra.ShortestPath(ctx, nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t)
	_, err = dijkstra.ShortestPath(ctx, g, 9, 1)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.True(t, errkind.Is(err, errkind.ErrNotFound))

	_, err = dijkstra.ShortestPath(ctx, g, 0, 9)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(ctx, g, 0, 1, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.ShortestPath(ctx, g, 0, 1, dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Core behavior
// ------------------------------------------------------------------------

func TestShortestPath_DirectBeatsTwoHop(t *testing.T) {
	res, err := dijkstra.ShortestPath(context.Background(), triangle(t), 0, 2)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 2}, res.Path)
	assert.InDelta(t, 6.2, res.TotalDistance, eps)
	assert.InDelta(t, res.TotalDistance, res.TravelTimeMinutes, eps)
}

func TestShortestPath_TwoHop(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.UpdateEdge(0, 2, 9))

	res, err := dijkstra.ShortestPath(context.Background(), g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.InDelta(t, 6.3, res.TotalDistance, eps)
}

func TestShortestPath_NoRoute(t *testing.T) {
	res, err := dijkstra.ShortestPath(context.Background(), triangle(t), 0, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.TotalDistance)

	// Edges are directed: no way back.
	res, err = dijkstra.ShortestPath(context.Background(), triangle(t), 2, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestShortestPath_SameNode(t *testing.T) {
	res, err := dijkstra.ShortestPath(context.Background(), triangle(t), 1, 1)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1}, res.Path)
	assert.Zero(t, res.TotalDistance)
}

func TestShortestPath_TieBreakBySlotOrder(t *testing.T) {
	build := func(order []int) *core.Graph {
		g := core.NewGraph()
		for _, id := range order {
			require.NoError(t, g.AddNode(id, "stop"))
		}
		require.NoError(t, g.AddEdge(0, 1, 1))
		require.NoError(t, g.AddEdge(0, 2, 1))
		require.NoError(t, g.AddEdge(1, 3, 1))
		require.NoError(t, g.AddEdge(2, 3, 1))
		return g
	}

	res, err := dijkstra.ShortestPath(context.Background(), build([]int{0, 1, 2, 3}), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, res.Path)

	res, err = dijkstra.ShortestPath(context.Background(), build([]int{0, 2, 1, 3}), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Options and hooks
// ------------------------------------------------------------------------

func TestShortestPath_MaxDistance(t *testing.T) {
	res, err := dijkstra.ShortestPath(context.Background(), triangle(t), 0, 2, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = dijkstra.ShortestPath(context.Background(), triangle(t), 0, 1, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	res, err := dijkstra.ShortestPath(context.Background(), triangle(t), 0, 2, dijkstra.WithInfEdgeThreshold(6))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path, "the 6.2 road is closed")
}

func TestShortestPath_OnSettle(t *testing.T) {
	var settles []dijkstra.Settle
	_, err := dijkstra.ShortestPath(context.Background(), triangle(t), 0, 2,
		dijkstra.WithOnSettle(func(s dijkstra.Settle) error {
			settles = append(settles, s)
			return nil
		}))
	require.NoError(t, err)

	require.Len(t, settles, 3)
	assert.Equal(t, []int{0, 1, 2}, settles[2].Settled)
	assert.Equal(t, map[int]float64{0: 0}, settles[0].Distances)
	assert.Equal(t, map[int]float64{0: 0, 1: 3.5, 2: 6.2}, settles[1].Distances)
	assert.Equal(t, 3.5, settles[1].Distance)
}

func TestShortestPath_Abort(t *testing.T) {
	boom := errors.New("boom")
	_, err := dijkstra.ShortestPath(context.Background(), triangle(t), 0, 2,
		dijkstra.WithOnSettle(func(dijkstra.Settle) error { return boom }))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.ShortestPath(ctx, triangle(t), 0, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
