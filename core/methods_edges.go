// File: methods_edges.go
// Role: Edge lifecycle: AddEdge / UpdateEdge / RemoveEdge and their unlocked helpers.
// Determinism:
//   - New edges are inserted at the front of the source's list; scans see newest first.
//   - UpdateEdge keeps the edge at its current position.

package core

import (
	"fmt"
	"math"
	"slices"
)

// AddEdge creates the directed edge src→dst with the given weight.
//
// Steps:
//  1. Both endpoints must be live (ErrNodeNotFound).
//  2. weight must be positive and finite (ErrBadWeight).
//  3. (src,dst) must not exist yet (ErrEdgeExists).
//  4. Insert at the front of src's edge list, then auto-persist.
//
// Self-loops (src == dst) are accepted.
//
// Complexity: O(deg(src)), plus O(V+E) when auto-persisting.
func (g *Graph) AddEdge(src, dst int, weight float64) (err error) {
	defer func() { g.observe("add_edge", err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err = g.insertEdge(src, dst, weight); err != nil {
		return err
	}
	return g.persistLocked()
}

// UpdateEdge changes the weight of the existing edge src→dst.
//
// Errors: ErrNodeNotFound (src), ErrBadWeight, ErrEdgeNotFound, ErrPersist.
//
// Complexity: O(deg(src)), plus O(V+E) when auto-persisting.
func (g *Graph) UpdateEdge(src, dst int, weight float64) (err error) {
	defer func() { g.observe("update_edge", err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes.Get(src)
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	if err = validateWeight(weight); err != nil {
		return err
	}
	i := indexOfEdge(n.edges, dst)
	if i < 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, src, dst)
	}
	n.edges[i].Weight = weight
	return g.persistLocked()
}

// RemoveEdge deletes the edge src→dst.
//
// Errors: ErrNodeNotFound (src), ErrEdgeNotFound, ErrPersist.
//
// Complexity: O(deg(src)), plus O(V+E) when auto-persisting.
func (g *Graph) RemoveEdge(src, dst int) (err error) {
	defer func() { g.observe("remove_edge", err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes.Get(src)
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	i := indexOfEdge(n.edges, dst)
	if i < 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, src, dst)
	}
	n.edges = slices.Delete(n.edges, i, i+1)
	g.edgeCount--
	return g.persistLocked()
}

// insertEdge validates and front-inserts src→dst. Caller holds the write lock.
func (g *Graph) insertEdge(src, dst int, weight float64) error {
	n, ok := g.nodes.Get(src)
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	if _, ok = g.nodes.Get(dst); !ok {
		return fmt.Errorf("%w: destination %d", ErrNodeNotFound, dst)
	}
	if err := validateWeight(weight); err != nil {
		return err
	}
	if indexOfEdge(n.edges, dst) >= 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeExists, src, dst)
	}

	n.edges = slices.Insert(n.edges, 0, Edge{To: dst, Weight: weight})
	g.edgeCount++
	return nil
}

func validateWeight(w float64) error {
	if !(w > 0) || math.IsInf(w, 1) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	return nil
}

func indexOfEdge(edges []Edge, dst int) int {
	return slices.IndexFunc(edges, func(e Edge) bool { return e.To == dst })
}
