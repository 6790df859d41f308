// Package core defines the Graph, Node and Edge types of the transport
// network, the functional options used to build a Graph, and the sentinel
// errors returned by its methods.
package core

import (
	"log/slog"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/transitnet/errkind"
	"github.com/katalvlaran/transitnet/internal/logging"
)

// DefaultCapacity is the number of node slots a Graph has unless WithCapacity is used.
const DefaultCapacity = 50

// Sentinel errors for graph operations.
var (
	// ErrCapacity indicates that every node slot is in use.
	ErrCapacity = errkind.New(errkind.ErrValidation, "core: node capacity exhausted")

	// ErrNodeExists indicates an insert with an id that is already live.
	ErrNodeExists = errkind.New(errkind.ErrValidation, "core: node already exists")

	// ErrNegativeID indicates a node id below zero.
	ErrNegativeID = errkind.New(errkind.ErrValidation, "core: node id is negative")

	// ErrEmptyName indicates a node name that is empty.
	ErrEmptyName = errkind.New(errkind.ErrValidation, "core: node name is empty")

	// ErrInvalidName indicates a node name that cannot be stored on one line.
	ErrInvalidName = errkind.New(errkind.ErrValidation, "core: node name contains a line break")

	// ErrBadWeight indicates an edge weight that is not a positive finite number.
	ErrBadWeight = errkind.New(errkind.ErrValidation, "core: edge weight must be positive")

	// ErrEdgeExists indicates a second edge between the same ordered pair.
	ErrEdgeExists = errkind.New(errkind.ErrValidation, "core: edge already exists")

	// ErrEmptyPath indicates a Load or Save without a file path.
	ErrEmptyPath = errkind.New(errkind.ErrValidation, "core: file path is empty")

	// ErrNodeNotFound indicates an operation referenced a node that is not live.
	ErrNodeNotFound = errkind.New(errkind.ErrNotFound, "core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errkind.New(errkind.ErrNotFound, "core: edge not found")

	// ErrPersist indicates the automatic rewrite of the backing file failed.
	ErrPersist = errkind.New(errkind.ErrIO, "core: auto-persist failed")
)

// Edge is a directed road leaving its owning node.
type Edge struct {
	// To is the destination node id.
	To int

	// Weight is the road length; always > 0.
	Weight float64
}

// Node is a read-only copy of a network location and its outgoing edges,
// most recently added edge first.
type Node struct {
	ID    int
	Name  string
	Edges []Edge
}

// node is the stored form of a Node.
type node struct {
	id    int
	name  string
	edges []Edge // front = newest
}

// Observer receives the outcome of every public mutation (op is a short
// snake_case name such as "add_node"). It is called after the lock is released.
type Observer func(op string, err error)

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity sets the maximum number of live nodes. Values ≤ 0 are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// WithLogger routes load/save/persist diagnostics to l.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithObserver registers fn to be told about every mutation and its result.
func WithObserver(fn Observer) GraphOption {
	return func(g *Graph) { g.observer = fn }
}

// Graph is the in-memory transport network.
//
// mu guards every field below it. nodes keeps insertion order (slot order).
// edgeCount mirrors the sum of len(node.edges). path is the auto-persist
// target; empty disables auto-persist.
type Graph struct {
	mu sync.RWMutex

	capacity  int
	nodes     *orderedmap.OrderedMap[int, *node]
	edgeCount int
	nextID    int
	path      string

	log      *slog.Logger
	observer Observer
}

// NewGraph creates an empty Graph with DefaultCapacity and no backing file.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		capacity: DefaultCapacity,
		nodes:    orderedmap.New[int, *node](),
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// observe forwards a mutation outcome to the observer, if any.
func (g *Graph) observe(op string, err error) {
	if g.observer != nil {
		g.observer(op, err)
	}
}
