package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/dfs"
	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/traverse"
)

// build creates nodes ids and adds edges in the given order (front insertion
// means the last edge added from a node is the first one stored).
func build(t *testing.T, ids []int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, "stop"))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	return g
}

// diamond: 0→1, 0→2, 1→3, 2→3, 3→4, plus isolated 9.
func diamond(t *testing.T) *core.Graph {
	return build(t, []int{0, 1, 2, 3, 4, 9}, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), 3)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.True(t, errkind.Is(err, errkind.ErrNotFound))
}

func TestDFS_IsolatedNode(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 9)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, res.Order)
	assert.True(t, res.Completed)
}

func TestDFS_Order(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0)
	require.NoError(t, err)

	// 0 stores [2 1]: 2 is explored first, 1 is reached last.
	assert.Equal(t, []int{0, 2, 3, 4, 1}, res.Order)
	assert.Equal(t, map[int]int{2: 0, 3: 2, 4: 3, 1: 0}, res.Parent)
	assert.Equal(t, map[int]int{0: 0, 2: 1, 3: 2, 4: 3, 1: 1}, res.Depth)
	assert.True(t, res.Completed)
}

func TestDFS_MarksAtPop(t *testing.T) {
	// 1 is pushed twice (from 0 and from 2) before its first pop.
	g := build(t, []int{0, 1, 2}, [][2]int{{0, 1}, {0, 2}, {2, 1}})

	var frontiers [][]int
	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(s traverse.Step) error {
		frontiers = append(frontiers, s.Frontier)
		return nil
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1}, res.Order, "each node visited once")
	assert.Equal(t, [][]int{{}, {1}, {1}}, frontiers, "stale duplicate stays on the stack until popped")
	assert.Equal(t, 2, res.Parent[1], "the most recent push wins")
}

func TestDFS_Stop(t *testing.T) {
	g := diamond(t)

	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(s traverse.Step) error {
		if s.ID == 3 {
			return traverse.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Equal(t, []int{0, 2, 3}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = dfs.DFS(g, 0, dfs.WithContext(ctx))
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Empty(t, res.Order)

	boom := errors.New("boom")
	res, err = dfs.DFS(g, 0, dfs.WithOnVisit(func(traverse.Step) error { return boom }))
	require.ErrorIs(t, err, boom)
	assert.False(t, res.Completed)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(diamond(t), 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, res.Order)

	res, err = dfs.DFS(diamond(t), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}
