// Package bfs provides breadth-first search over a transport network,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → hop count from start
//   - Parent: node → predecessor in the BFS tree
//   - Completed: whether the queue drained without being stopped
//   - Hooks:
//   - OnEnqueue (when a node is queued)
//   - OnVisit   (per-visit suspension point; may stop or abort)
//   - Honors a MaxDepth limit (d>0) or no limit (d==0).
//
// Determinism
//
//	A node is marked visited when it is enqueued, so it is queued at most once.
//	Neighbors are offered in stored edge order, most recently added edge first,
//	so the visit sequence is fully reproducible for a given network.
//
// Stopping
//
//	OnVisit returning traverse.ErrStop, or a done context, ends the traversal
//	with Completed=false, the visited prefix in Order, and a nil error. Any
//	other OnVisit error is returned wrapped, alongside the partial result.
//	The package never sleeps or renders; pacing belongs to the hook.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(s traverse.Step) error {
//	        fmt.Println("visit", s.ID, "queue", s.Frontier)
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start node does not exist (kind NotFound).
//   - ErrOptionViolation      for an invalid Option (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors other than traverse.ErrStop.
package bfs
