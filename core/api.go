// File: api.go
// Role: Read-only getters. Every method takes the read lock and returns copies,
// so callers can never mutate graph internals through a result.

package core

import (
	"fmt"
	"slices"
)

// HasNode reports whether id is a live node.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(id)
	return ok
}

// NodeName returns the name of id, or "" when id is not live.
func (g *Graph) NodeName(id int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes.Get(id); ok {
		return n.name
	}
	return ""
}

// Node returns a copy of node id and its edges.
// Errors: ErrNodeNotFound.
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes.Get(id)
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return n.export(), nil
}

// Nodes returns copies of all live nodes in slot order.
// Complexity: O(V+E).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.export())
	}
	return out
}

// Neighbors returns the outgoing edges of id, newest first.
// Errors: ErrNodeNotFound.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return slices.Clone(n.edges), nil
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes.Len()
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}

// NextID returns the id AddNodeAuto would assign next.
func (g *Graph) NextID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nextID
}

// Capacity returns the maximum number of live nodes.
func (g *Graph) Capacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.capacity
}

// BackingPath returns the auto-persist target, or "" when auto-persist is off.
func (g *Graph) BackingPath() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.path
}

func (n *node) export() Node {
	return Node{ID: n.id, Name: n.name, Edges: slices.Clone(n.edges)}
}
