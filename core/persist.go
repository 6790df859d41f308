// File: persist.go
// Role: Text persistence: Load / Save / Clear, the backing-path switch and the
// auto-persist hook every mutation runs under the write lock.
// Format:
//
//	# NODES
//	N;<id>;<name>
//
//	# EDGES
//	E;<src>;<dst>;<weight>

package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/internal/atomicfile"
	"github.com/katalvlaran/transitnet/internal/record"
)

const (
	tagNode = "N"
	tagEdge = "E"
)

// Load replaces the whole graph with the contents of path and makes path the
// auto-persist target.
//
// Parsing is fail-fast: a malformed number or a wrong field count returns a
// *errkind.FormatError carrying the line number and leaves the graph exactly
// as it was. Records that parse but fail validation (duplicate id, edge to an
// unknown node, non-positive weight, capacity) are skipped and logged at WARN.
// Unknown tags are ignored. After a successful load NextID() is max(id)+1.
//
// Errors: ErrEmptyPath, *errkind.FormatError, or an error of kind errkind.ErrIO
// wrapping the underlying os error (errors.Is(err, fs.ErrNotExist) works).
//
// Complexity: O(V+E) plus the per-record validation cost.
func (g *Graph) Load(path string) (err error) {
	defer func() { g.observe("load", err) }()

	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("core: open %s: %w: %w", path, errkind.ErrIO, err)
	}
	defer f.Close()

	g.mu.Lock()
	defer g.mu.Unlock()

	fresh := NewGraph(WithCapacity(g.capacity), WithLogger(g.log))
	var nodes, edges, skipped int
	err = record.Scan(bufio.NewReader(f), func(l record.Line) error {
		added, rejected, perr := fresh.parseLine(l)
		if perr != nil {
			return &errkind.FormatError{Path: path, Line: l.No, Err: perr}
		}
		if rejected != nil {
			skipped++
			g.log.Warn("skipping network record", "path", path, "line", l.No, "error", rejected)
			return nil
		}
		switch added {
		case tagNode:
			nodes++
		case tagEdge:
			edges++
		}
		return nil
	})
	if err != nil {
		var fe *errkind.FormatError
		if errors.As(err, &fe) {
			return err
		}
		return fmt.Errorf("core: read %s: %w: %w", path, errkind.ErrIO, err)
	}

	g.nodes = fresh.nodes
	g.edgeCount = fresh.edgeCount
	g.nextID = 0
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key >= g.nextID {
			g.nextID = pair.Key + 1
		}
	}
	g.path = path

	g.log.Info("network loaded", "path", path, "nodes", nodes, "edges", edges,
		"skipped", skipped, "next_id", g.nextID)
	return nil
}

// parseLine applies one record to a graph that is not yet shared.
// It returns the tag it applied ("" when nothing was applied), the validation
// error when the graph refused the record, and malformed when the line cannot be parsed.
func (g *Graph) parseLine(l record.Line) (tag string, rejected, malformed error) {
	switch l.Tag {
	case tagNode:
		f, err := l.Fields(2)
		if err != nil {
			return "", nil, err
		}
		id, err := record.Int(f[0])
		if err != nil {
			return "", nil, fmt.Errorf("node id: %w", err)
		}
		if rejected = g.insertNode(id, f[1]); rejected != nil {
			return "", rejected, nil
		}
		return tagNode, nil, nil

	case tagEdge:
		f, err := l.Fields(3)
		if err != nil {
			return "", nil, err
		}
		src, err := record.Int(f[0])
		if err != nil {
			return "", nil, fmt.Errorf("edge source: %w", err)
		}
		dst, err := record.Int(f[1])
		if err != nil {
			return "", nil, fmt.Errorf("edge destination: %w", err)
		}
		w, err := record.Float(f[2])
		if err != nil {
			return "", nil, fmt.Errorf("edge weight: %w", err)
		}
		if rejected = g.insertEdge(src, dst, w); rejected != nil {
			return "", rejected, nil
		}
		return tagEdge, nil, nil

	default:
		g.log.Debug("ignoring unknown record", "line", l.No, "tag", l.Tag)
		return "", nil, nil
	}
}

// Save writes the graph to path. The backing path is not changed.
//
// Errors: ErrEmptyPath, or an error of kind errkind.ErrIO.
//
// Complexity: O(V+E).
func (g *Graph) Save(path string) (err error) {
	defer func() { g.observe("save", err) }()

	if path == "" {
		return ErrEmptyPath
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if err = atomicfile.WriteFile(path, g.writeTo); err != nil {
		return fmt.Errorf("core: save %s: %w: %w", path, errkind.ErrIO, err)
	}
	g.log.Info("network saved", "path", path, "nodes", g.nodes.Len(), "edges", g.edgeCount)
	return nil
}

// Clear drops every node and edge, resets NextID to 0 and detaches the backing
// file. Nothing is written.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.nodes = orderedmap.New[int, *node]()
	g.edgeCount = 0
	g.nextID = 0
	g.path = ""
	g.mu.Unlock()

	g.observe("clear", nil)
}

// SetBackingPath makes path the auto-persist target without loading it.
// An empty path turns auto-persist off.
func (g *Graph) SetBackingPath(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.path = path
}

// AdjacencyMatrix is shorthand for g.View().Matrix().
func (g *Graph) AdjacencyMatrix() [][]float64 {
	return g.View().Matrix()
}

// persistLocked rewrites the backing file, if any. Caller holds the write lock.
// The in-memory change has already been applied when this fails.
func (g *Graph) persistLocked() error {
	if g.path == "" {
		return nil
	}
	if err := atomicfile.WriteFile(g.path, g.writeTo); err != nil {
		g.log.Warn("auto-persist failed", "path", g.path, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrPersist, g.path, err)
	}
	return nil
}

// writeTo serializes the graph. Caller holds at least the read lock.
//
// Edges of a node are written oldest first so that front insertion on Load
// rebuilds the same stored order.
func (g *Graph) writeTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# NODES")
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := pair.Value
		fmt.Fprintln(bw, record.Join(tagNode, fmt.Sprint(n.id), n.name))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "# EDGES")
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := pair.Value
		for _, e := range slices.Backward(n.edges) {
			fmt.Fprintln(bw, record.Join(tagEdge,
				fmt.Sprint(n.id), fmt.Sprint(e.To), record.FormatFloat(e.Weight)))
		}
	}
	return bw.Flush()
}
