// Package dfs implements depth-first traversal and circular-route detection
// over a transport network snapshot.
//
// What:
//
//   - DFS: iterative walk with an explicit stack. Supports:
//   - A per-visit hook that can observe the stack or stop the walk
//   - Cancellation via context.Context
//   - Depth limiting
//   - DetectCycles: reports directed cycles closed by back edges using
//     White/Gray/Black coloring, canonicalized by minimal rotation.
//
// Determinism:
//
//	Visited is marked at pop time; stale duplicates are skipped on pop.
//	Neighbors are pushed in reverse of their stored order, so the first
//	stored neighbor (most recently added edge) is explored first.
//
// Complexity:
//
//   - DFS:          Time O(V+E), Memory O(V+E) (a node may be pushed once per incoming edge)
//   - DetectCycles: Time O(V+E + C·L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start id not in the network (kind NotFound)
//   - hook errors             wrapped, other than traverse.ErrStop
//
// traverse.ErrStop or a done context end the walk with Completed=false and
// a nil error.
package dfs
