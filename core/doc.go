// Package core provides the transport network store: a bounded, in-memory
// directed graph of named locations (nodes) joined by positively weighted
// roads (edges), with a plain-text file format and optional auto-persistence.
//
// The Graph G = (V,E) enforces:
//
//   - At most Capacity() live nodes (default 50, WithCapacity).
//   - Unique, non-negative node ids; non-empty single-line names.
//   - At most one edge per (source, destination) pair; self-loops allowed.
//   - Strictly positive, finite edge weights.
//   - No dangling edges: RemoveNode drops every edge that targets the node.
//
// Ordering:
//
//	Nodes are kept in insertion order; that order is the "slot order" used by
//	Nodes(), View() and every algorithm tie-break. Each node's outgoing edges
//	are front-inserted, so the most recently added edge is scanned first.
//
// Id allocation:
//
//	AddNodeAuto assigns NextID() and increments it. AddNode with an explicit
//	id bumps NextID() to id+1 when id ≥ NextID(), so automatic ids never
//	collide with manual ones. Load recomputes NextID() as max(id)+1.
//
// Persistence:
//
//	# NODES
//	N;<id>;<name>
//
//	# EDGES
//	E;<sourceId>;<destId>;<weight>
//
//	Load replaces the whole graph and remembers the path; from then on every
//	successful mutation rewrites that file (temp file + rename). A failed
//	rewrite is returned as an error matching ErrPersist; the in-memory change
//	has already been applied when that happens.
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. A mutation and its file rewrite
//	run under the write lock, so no partially applied change is observable.
//	Algorithms work on an immutable *View obtained from View().
//
// Errors (all match a kind from package errkind):
//
//	ErrCapacity, ErrNodeExists, ErrNegativeID, ErrEmptyName, ErrInvalidName,
//	ErrBadWeight, ErrEdgeExists, ErrEmptyPath   – errkind.ErrValidation
//	ErrNodeNotFound, ErrEdgeNotFound            – errkind.ErrNotFound
//	ErrPersist                                  – errkind.ErrIO
//	*errkind.FormatError from Load              – errkind.ErrFormat
package core
