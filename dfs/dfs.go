// Package dfs implements iterative depth-first search over a transport network.
//
// The walk keeps an explicit LIFO stack. A node is marked visited when it is
// popped, so the same id may sit on the stack several times; every pop after
// the first is skipped. Neighbors are pushed in reverse stored order, so the
// first stored neighbor (the most recently added edge) is explored next.
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/traverse"
)

// stackItem is one pending visit.
type stackItem struct {
	id     int
	depth  int
	parent int // -1 for the start node
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	view    *core.View
	opts    DFSOptions
	stack   []stackItem
	visited map[int]bool
	res     *DFSResult
}

// DFS performs depth-first search on g from start.
//
// The result is returned even when err != nil or the walk was stopped; its
// Order then holds the prefix visited so far and Completed is false.
// traverse.ErrStop and context cancellation are not errors.
func DFS(g core.Viewer, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	view := g.View()
	if !view.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := view.Len()
	w := &dfsWalker{
		view:    view,
		opts:    dopts,
		stack:   make([]stackItem, 0, n),
		visited: make(map[int]bool, n),
		res: &DFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// 5. Traverse
	w.stack = append(w.stack, stackItem{id: start, parent: -1})
	if err := w.loop(); err != nil {
		if traverse.Aborted(dopts.Ctx, err) {
			return w.res, nil
		}
		return w.res, err
	}
	w.res.Completed = true

	return w.res, nil
}

// loop pops until the stack is empty, honoring cancellation before each pop.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[top.id] {
			continue // stale duplicate
		}

		if err := w.visit(top); err != nil {
			return err
		}
		w.pushNeighbors(top)
	}

	return nil
}

// visit marks the node, records it and calls OnVisit.
func (w *dfsWalker) visit(item stackItem) error {
	w.visited[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = item.depth
	if item.parent >= 0 {
		w.res.Parent[item.id] = item.parent
	}

	if w.opts.OnVisit == nil {
		return nil
	}
	frontier := make([]int, len(w.stack))
	for i, s := range w.stack {
		frontier[len(w.stack)-1-i] = s.id
	}
	step := traverse.Step{
		ID:       item.id,
		Name:     w.view.Name(item.id),
		Depth:    item.depth,
		Order:    traverse.Snapshot(w.res.Order),
		Frontier: frontier,
	}
	if err := w.opts.OnVisit(step); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %d: %w", item.id, err)
	}

	return nil
}

// pushNeighbors pushes unvisited neighbors in reverse stored order.
func (w *dfsWalker) pushNeighbors(item stackItem) {
	if w.opts.MaxDepth >= 0 && item.depth >= w.opts.MaxDepth {
		return
	}
	for _, e := range slices.Backward(w.view.Neighbors(item.id)) {
		if !w.visited[e.To] {
			w.stack = append(w.stack, stackItem{id: e.To, depth: item.depth + 1, parent: item.id})
		}
	}
}
