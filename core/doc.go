// Package core provides the residual graph on which the max-flow engine
// operates.
//
// A Graph G = (V, E) has a fixed vertex set V = {0, 1, ..., n-1} chosen at
// construction time. Every capacitated arc inserted with AddEdge is stored as
// a pair of residual arcs:
//
//   - a forward arc  u→v with the requested capacity and flow 0,
//   - a backward arc v→u with capacity 0 and flow 0.
//
// The two halves of a pair live side by side in a single edge arena and are
// addressed by integer handles (EdgeID). A forward arc always has an even
// handle and its partner is id^1, so pair lookup is O(1) and no arc ever
// holds a pointer to another:
//
//	arena:  [ 0: u→v cap=c ][ 1: v→u cap=0 ][ 2: ... ][ 3: ... ] ...
//	          └──── pair ────┘
//
// Residual capacity is derived, never stored: Capacity - Flow. An arc is
// traversable in the residual network iff that value is strictly positive.
// Augment is the only mutator of flow; it moves flow on an arc and the
// opposite amount on its partner, which keeps the pair skew-symmetric:
//
//	Flow(e) == -Flow(e^1)
//
// Adjacency preserves insertion order. Order is irrelevant to correctness,
// but it makes augmenting-path selection among ties deterministic.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - an endpoint outside [0, n).
//	ErrNegativeCapacity    - AddEdge called with capacity < 0.
//	ErrEdgeNotFound        - a handle outside the arena.
//	ErrAugmentOutOfRange   - Augment amount outside [0, ResidualCapacity].
//
// A Graph is not safe for concurrent mutation. Clone it to hand independent
// copies to other goroutines.
package core
