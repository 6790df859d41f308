// Package dfs defines types and options for depth-first search traversal
// over a transport network snapshot, including cancellation, a per-visit
// hook, depth limiting, and cycle detection states.
package dfs

import (
	"context"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/traverse"
)

// VertexState represents the cycle-detection visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errkind.New(errkind.ErrValidation, "dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start id does not exist.
	ErrStartVertexNotFound = errkind.New(errkind.ErrNotFound, "dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// A done context ends the traversal like traverse.ErrStop.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked right after a node is popped for the
	// first time and appended to Order, before its neighbors are pushed.
	// traverse.ErrStop ends the walk quietly; other errors abort it.
	OnVisit func(step traverse.Step) error

	// MaxDepth, if non-negative, stops pushing neighbors of nodes at that
	// depth. A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the per-visit hook.
func WithOnVisit(fn func(step traverse.Step) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were first popped (pre-order).
	Order []int

	// Depth maps each visited node to its depth along the branch that reached it.
	Depth map[int]int

	// Parent maps each visited node to the node whose expansion pushed the
	// entry that visited it. The start node has no entry.
	Parent map[int]int

	// Completed is false when the walk was stopped or failed.
	Completed bool
}
