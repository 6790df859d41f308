package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/traverse"
)

var (
	// ErrStartVertexNotFound reports a start id that is not in the network.
	ErrStartVertexNotFound = errkind.New(errkind.ErrNotFound, "bfs: start vertex not found")

	// ErrGraphNil reports a nil network.
	ErrGraphNil = errkind.New(errkind.ErrValidation, "bfs: graph is nil")

	// ErrOptionViolation reports an Option with an out-of-range value.
	ErrOptionViolation = errkind.New(errkind.ErrValidation, "bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a node the traversal never reached.
	ErrUnreached = errkind.New(errkind.ErrNotFound, "bfs: vertex not reached")
)

// Option tunes a BFS run. A bad value is remembered and reported as
// ErrOptionViolation once BFS starts, so options never panic.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one BFS run.
type BFSOptions struct {
	// Ctx allows cancellation. A done context ends the traversal like ErrStop.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued (and marked visited).
	OnEnqueue func(id, depth int)

	// OnVisit is the per-visit suspension point, called after the node is
	// appended to Order and before its neighbors are offered to the queue.
	// Returning traverse.ErrStop ends the traversal quietly; any other error
	// aborts it and is returned wrapped.
	OnVisit func(step traverse.Step) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	err error // first invalid option
}

// DefaultOptions returns a BFSOptions with:
//   - context.Background()
//   - no depth limit
//   - no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnVisit:   func(traverse.Step) error { return nil },
	}
}

// WithContext lets ctx cancel the walk between visits.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue observes every node as it joins the queue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers the per-visit hook.
func WithOnVisit(fn func(step traverse.Step) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: node id → distance in edges from the start, for every enqueued node.
//   - Parent: node id → predecessor in the BFS tree.
//   - Completed: false when the traversal was stopped or failed.
type BFSResult struct {
	Order     []int
	Depth     map[int]int
	Parent    map[int]int
	Completed bool
}

// PathTo reconstructs the fewest-hops path from the start node to dest.
// Returns ErrUnreached if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreached, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}

	return traverse.Reversed(path), nil
}
