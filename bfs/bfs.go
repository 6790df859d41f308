// Package bfs provides breadth-first search over a transport network,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node,
// with a per-visit hook that can observe or stop the walk.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitnet/core"
	"github.com/katalvlaran/transitnet/traverse"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	view    *core.View
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
//
// The result is returned even when err != nil or the walk was stopped; its
// Order then holds the prefix visited so far and Completed is false.
//
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for invalid
// input (no traversal happens), or a wrapped OnVisit error. traverse.ErrStop
// and context cancellation are not errors.
func BFS(g core.Viewer, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	view := g.View()
	if !view.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := view.Len()
	w := &walker{
		view:    view,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		if traverse.Aborted(w.ctx, err) {
			return w.res, nil
		}
		return w.res, err
	}
	w.res.Completed = true
	return w.res, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)

	frontier := make([]int, len(w.queue))
	for i, q := range w.queue {
		frontier[i] = q.id
	}
	step := traverse.Step{
		ID:       item.id,
		Name:     w.view.Name(item.id),
		Depth:    item.depth,
		Order:    traverse.Snapshot(w.res.Order),
		Frontier: frontier,
	}
	if err := w.opts.OnVisit(step); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors offers unseen neighbors in stored edge order (newest edge
// first), honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.view.Neighbors(item.id) {
		if !w.visited[e.To] {
			w.res.Parent[e.To] = item.id
			w.enqueue(e.To, next)
		}
	}
}
