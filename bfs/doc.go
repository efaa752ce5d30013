// Package bfs provides breadth-first search over the residual network of a
// core.Graph, returning visit order, hop distances, and parent arcs.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex,
//     following only arcs with strictly positive residual capacity.
//   - Returns a Result containing:
//   - Order:  vertices in visit (dequeue) sequence
//   - Depth:  hop distance per vertex, -1 when unreached
//   - Parent: the arc used to discover each vertex, core.NoEdge for the root
//   - Hooks and limits:
//   - WithOnVisit   (when visiting; may abort with an error)
//   - WithFilterEdge (extra per-arc predicate on top of the residual rule)
//   - WithMaxDepth  (d>0 limit, d==0 explicit "no limit")
//   - WithStopAt    (stop the instant a target vertex is discovered)
//
// Why
//
//   - WithStopAt + PathTo is the augmenting-path search of Edmonds–Karp.
//   - A plain run from the source after max flow yields the source side of
//     the minimum cut and the "BFS order" used by flow reports.
//
// Determinism
//
//	Arcs are scanned in core.Graph adjacency (insertion) order, so the visit
//	sequence and the chosen parents are fully reproducible.
//
// Complexity (V = vertices, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth and Parent
//
// Usage
//
//	res, err := bfs.BFS(g, source, bfs.WithStopAt(sink))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a hook error
//	}
//	if res.Reached(sink) {
//		path, _ := res.PathTo(sink) // arcs source→...→sink
//		_ = path
//	}
package bfs
