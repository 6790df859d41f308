// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitnet/core"
)

// Common weights used across core tests.
const (
	W1  = 1.0
	W28 = 2.8
	W35 = 3.5
	W62 = 6.2
)

// triangle builds nodes {0,1,2} with 0→1 (3.5), 1→2 (2.8), 0→2 (6.2).
func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	require.NoError(t, g.AddNode(0, "Depot"))
	require.NoError(t, g.AddNode(1, "Market"))
	require.NoError(t, g.AddNode(2, "Harbor"))
	require.NoError(t, g.AddEdge(0, 1, W35))
	require.NoError(t, g.AddEdge(1, 2, W28))
	require.NoError(t, g.AddEdge(0, 2, W62))
	return g
}

// writeFile drops content into dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// targets lists the destinations of edges in stored order.
func targets(edges []core.Edge) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}
