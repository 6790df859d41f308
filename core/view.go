// File: view.go
// Role: Immutable snapshots of the network for algorithms and renderers.
// Determinism:
//   - Positions follow slot order; edges follow stored order (newest first).
// Concurrency:
//   - Built under the read lock; a View never changes afterwards and is safe to share.

package core

import "slices"

// Viewer is anything that can hand out a consistent snapshot of a network.
// Both *Graph and *View implement it, so algorithms accept either.
type Viewer interface {
	View() *View
}

// View is a read-only snapshot of a Graph.
//
// Nodes are addressed by position 0..Len()-1 (slot order) or by id.
type View struct {
	ids   []int
	names []string
	edges [][]Edge
	index map[int]int // id → position
}

// View snapshots the graph.
// Complexity: O(V+E).
func (g *Graph) View() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.nodes.Len()
	v := &View{
		ids:   make([]int, 0, n),
		names: make([]string, 0, n),
		edges: make([][]Edge, 0, n),
		index: make(map[int]int, n),
	}
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		nd := pair.Value
		v.index[nd.id] = len(v.ids)
		v.ids = append(v.ids, nd.id)
		v.names = append(v.names, nd.name)
		v.edges = append(v.edges, slices.Clone(nd.edges))
	}
	return v
}

// View returns v itself.
func (v *View) View() *View { return v }

// Len returns the number of nodes in the snapshot.
func (v *View) Len() int { return len(v.ids) }

// IDs returns node ids in slot order.
func (v *View) IDs() []int { return slices.Clone(v.ids) }

// Has reports whether id is part of the snapshot.
func (v *View) Has(id int) bool {
	_, ok := v.index[id]
	return ok
}

// Position returns the slot position of id.
func (v *View) Position(id int) (int, bool) {
	i, ok := v.index[id]
	return i, ok
}

// IDAt returns the id stored at position i.
func (v *View) IDAt(i int) int { return v.ids[i] }

// Name returns the name of id, or "".
func (v *View) Name(id int) string {
	if i, ok := v.index[id]; ok {
		return v.names[i]
	}
	return ""
}

// EdgesAt returns the outgoing edges of the node at position i, newest first.
// The slice is shared with the snapshot and must not be modified.
func (v *View) EdgesAt(i int) []Edge { return v.edges[i] }

// Neighbors returns the outgoing edges of id, newest first, or nil when id is absent.
// The slice is shared with the snapshot and must not be modified.
func (v *View) Neighbors(id int) []Edge {
	if i, ok := v.index[id]; ok {
		return v.edges[i]
	}
	return nil
}

// Matrix returns the adjacency matrix of the snapshot: m[i][j] is the weight
// of the edge from position i to position j, or 0 when there is none.
// Complexity: O(V² + E).
func (v *View) Matrix() [][]float64 {
	m := make([][]float64, len(v.ids))
	for i := range m {
		m[i] = make([]float64, len(v.ids))
		for _, e := range v.edges[i] {
			m[i][v.index[e.To]] = e.Weight
		}
	}
	return m
}
