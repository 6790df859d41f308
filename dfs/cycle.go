// Package dfs also reports circular routes: directed cycles closed by a back
// edge during a three-color depth-first walk. Each cycle is rotated so its
// smallest id comes first (Booth's minimal rotation), deduplicated, and the
// list is sorted for deterministic output. Self-loops count as cycles.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = cycles found, L = average cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"slices"

	"github.com/katalvlaran/transitnet/core"
)

// DetectCycles inspects g for circular routes.
// Returns (true, cycles) when any back edge closes a cycle, each cycle given
// closed ([a b c a]); (false, nil) otherwise. A nil graph has no cycles.
//
// Only cycles closed by a back edge are listed, which is enough to prove a
// network has (or lacks) circular routes but is not an enumeration of every
// simple cycle.
func DetectCycles(g core.Viewer) (bool, [][]int) {
	if g == nil {
		return false, nil
	}
	v := g.View()

	d := &cycleWalker{
		view:  v,
		state: make(map[int]int, v.Len()),
		path:  make([]int, 0, v.Len()),
		seen:  make(map[string]struct{}),
	}
	for _, id := range v.IDs() {
		if d.state[id] == White {
			d.visit(id)
		}
	}

	slices.SortFunc(d.cycles, Compare)
	if len(d.cycles) == 0 {
		return false, nil
	}

	return true, d.cycles
}

type cycleWalker struct {
	view   *core.View
	state  map[int]int
	path   []int
	seen   map[string]struct{}
	cycles [][]int
}

// visit colors id Gray, explores its edges and records Gray→Gray back edges.
func (d *cycleWalker) visit(id int) {
	d.state[id] = Gray
	d.path = append(d.path, id)

	for _, e := range d.view.Neighbors(id) {
		switch d.state[e.To] {
		case White:
			d.visit(e.To)
		case Gray:
			d.record(e.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
}

// record extracts the path segment starting at start, canonicalizes it and
// keeps it when new.
func (d *cycleWalker) record(start int) {
	idx := slices.Index(d.path, start)
	rot := MinimalRotation(d.path[idx:])
	closed := append(rot, rot[0])

	sig := JoinSig(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
