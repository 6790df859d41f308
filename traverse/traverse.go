// Package traverse holds the pieces shared by the bfs and dfs packages: the
// Step passed to per-visit hooks and the ErrStop signal a hook returns to end
// a traversal early without reporting a failure.
package traverse

import (
	"context"
	"errors"
	"slices"
)

// ErrStop asks a traversal to stop. The traversal returns Completed=false,
// the prefix visited so far and a nil error.
var ErrStop = errors.New("traverse: stopped by caller")

// Step describes the traversal right after a node was visited.
type Step struct {
	// ID and Name identify the node just visited.
	ID   int
	Name string

	// Depth is the edge count from the start along the discovering branch.
	Depth int

	// Order is the visit sequence so far, ending with ID.
	Order []int

	// Frontier lists what is still waiting: queue front first for BFS,
	// stack top first for DFS. DFS frontiers may contain already visited ids.
	Frontier []int
}

// Aborted reports whether err ends a traversal without being a failure:
// ErrStop, or the context's own cancellation error.
func Aborted(ctx context.Context, err error) bool {
	if errors.Is(err, ErrStop) {
		return true
	}
	return ctx.Err() != nil && errors.Is(err, ctx.Err())
}

// Snapshot copies s so a Step never aliases traversal state.
func Snapshot(s []int) []int {
	return slices.Clone(s)
}

// Reversed returns a reversed copy of s.
func Reversed(s []int) []int {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}
