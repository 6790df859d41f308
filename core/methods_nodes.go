// File: methods_nodes.go
// Role: Node lifecycle: AddNode / AddNodeAuto / RemoveNode and their unlocked helpers.
// Concurrency:
//   - Public methods take the write lock and run the auto-persist under it.
//   - insertNode/deleteNode assume the caller holds the write lock (or owns g exclusively).

package core

import (
	"fmt"
	"strings"
)

// AddNode inserts a node with an explicit id.
//
// Validation order: capacity, negative id, duplicate id, empty name, line breaks.
// On success NextID() becomes max(NextID(), id+1) and the backing file, if any,
// is rewritten.
//
// Errors: ErrCapacity, ErrNegativeID, ErrNodeExists, ErrEmptyName,
// ErrInvalidName, ErrPersist.
//
// Complexity: O(1) amortized, plus O(V+E) when auto-persisting.
func (g *Graph) AddNode(id int, name string) (err error) {
	defer func() { g.observe("add_node", err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err = g.insertNode(id, name); err != nil {
		return err
	}
	return g.persistLocked()
}

// AddNodeAuto inserts a node under the next free id and returns that id.
//
// Errors: ErrCapacity, ErrEmptyName, ErrInvalidName, ErrPersist. On
// ErrPersist the returned id is valid: the node exists in memory.
//
// Complexity: O(1) amortized, plus O(V+E) when auto-persisting.
func (g *Graph) AddNodeAuto(name string) (id int, err error) {
	defer func() { g.observe("add_node_auto", err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	id = g.nextID
	if err = g.insertNode(id, name); err != nil {
		return -1, err
	}
	return id, g.persistLocked()
}

// RemoveNode deletes a node, its outgoing edges and every edge elsewhere that
// targets it.
//
// Errors: ErrNodeNotFound, ErrPersist.
//
// Complexity: O(V+E).
func (g *Graph) RemoveNode(id int) (err error) {
	defer func() { g.observe("remove_node", err) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err = g.deleteNode(id); err != nil {
		return err
	}
	return g.persistLocked()
}

// insertNode validates and stores a node. Caller holds the write lock.
func (g *Graph) insertNode(id int, name string) error {
	if g.nodes.Len() >= g.capacity {
		return fmt.Errorf("%w: %d of %d slots used", ErrCapacity, g.nodes.Len(), g.capacity)
	}
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	if _, exists := g.nodes.Get(id); exists {
		return fmt.Errorf("%w: %d", ErrNodeExists, id)
	}
	if err := validateName(name); err != nil {
		return err
	}

	g.nodes.Set(id, &node{id: id, name: name})
	if id >= g.nextID {
		g.nextID = id + 1
	}
	return nil
}

// deleteNode removes id and cascades to incoming edges. Caller holds the write lock.
func (g *Graph) deleteNode(id int) error {
	target, ok := g.nodes.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	// Drop every edge that points at id from the other nodes.
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		n := pair.Value
		if n.id == id {
			continue
		}
		kept := n.edges[:0]
		for _, e := range n.edges {
			if e.To == id {
				g.edgeCount--
				continue
			}
			kept = append(kept, e)
		}
		n.edges = kept
	}

	g.edgeCount -= len(target.edges)
	target.edges = nil
	g.nodes.Delete(id)
	return nil
}

// validateName enforces the storable-name rules shared by insert and load.
func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
