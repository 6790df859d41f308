// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// transport network snapshot.
//
// The network is small and bounded, so the implementation is the classic
// array-based form without a priority queue: each round scans every unsettled
// node for the minimum tentative distance.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/transitnet/core"
)

// ShortestPath computes the cheapest route from source to dest.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. source and dest must exist (ErrVertexNotFound); nothing is computed otherwise.
//
// Each round picks the unsettled node with the smallest finite distance; ties
// go to the lowest slot position (strict <). The search stops once dest is
// settled or no reachable unsettled node remains. A cancelled ctx or an
// OnSettle error aborts with that error (wrapped).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func ShortestPath(ctx context.Context, g core.Viewer, source, dest int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate endpoints against one consistent snapshot
	view := g.View()
	src, ok := view.Position(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	dst, ok := view.Position(dest)
	if !ok {
		return nil, fmt.Errorf("%w: destination %d", ErrVertexNotFound, dest)
	}

	r := newRunner(view, cfg, src)
	if err := r.process(ctx, dst); err != nil {
		return nil, err
	}

	return r.result(dst), nil
}

// runner holds the mutable state for a single execution, indexed by slot position.
type runner struct {
	view    *core.View
	options Options
	src     int
	dist    []float64
	prev    []int
	visited []bool
	settled []int // ids
}

// newRunner sets dist[v] = +∞ and prev[v] = -1 for every position, dist[src] = 0.
func newRunner(view *core.View, cfg Options, src int) *runner {
	n := view.Len()
	r := &runner{
		view:    view,
		options: cfg,
		src:     src,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0

	return r
}

// process runs at most V rounds of select-settle-relax.
func (r *runner) process(ctx context.Context, dst int) error {
	for range r.dist {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// 1) Pick the closest unsettled position; strict < keeps the lowest slot on ties.
		u, best := -1, math.Inf(1)
		for i, d := range r.dist {
			if !r.visited[i] && d < best {
				u, best = i, d
			}
		}
		if u == -1 || best > r.options.MaxDistance {
			return nil // nothing reachable remains
		}

		// 2) Settle u.
		r.visited[u] = true
		r.settled = append(r.settled, r.view.IDAt(u))
		if err := r.notify(u); err != nil {
			return err
		}
		if u == dst {
			return nil
		}

		// 3) Relax its outgoing edges.
		r.relax(u)
	}

	return nil
}

// relax improves tentative distances through u.
func (r *runner) relax(u int) {
	for _, e := range r.view.EdgesAt(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue // closed road
		}
		v, ok := r.view.Position(e.To)
		if !ok || r.visited[v] {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		if nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
		}
	}
}

// notify calls OnSettle, if any, with a copy of the distance table.
func (r *runner) notify(u int) error {
	if r.options.OnSettle == nil {
		return nil
	}
	table := make(map[int]float64, len(r.dist))
	for i, d := range r.dist {
		if !math.IsInf(d, 1) {
			table[r.view.IDAt(i)] = d
		}
	}
	id := r.view.IDAt(u)
	s := Settle{
		ID:        id,
		Distance:  r.dist[u],
		Distances: table,
		Settled:   append([]int(nil), r.settled...),
	}
	if err := r.options.OnSettle(s); err != nil {
		return fmt.Errorf("dijkstra: OnSettle hook for %d: %w", id, err)
	}

	return nil
}

// result rebuilds the path by walking predecessors back from dst.
func (r *runner) result(dst int) *Result {
	if !r.visited[dst] {
		return &Result{}
	}

	var path []int
	for at := dst; at != -1; at = r.prev[at] {
		path = append(path, r.view.IDAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	d := r.dist[dst]
	return &Result{
		Found:             true,
		TotalDistance:     d,
		Path:              path,
		TravelTimeMinutes: d / 60 * 60,
	}
}
