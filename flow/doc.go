// Package flow computes maximum flows on the residual networks of package
// core using the Edmonds–Karp refinement of Ford–Fulkerson.
//
// Method
//
//  1. Breadth-first search from the source over arcs with positive residual
//     capacity, stopping the instant the sink is discovered. The path found
//     is a fewest-hop augmenting path.
//  2. Walk the path backward from the sink; its bottleneck is the smallest
//     residual capacity on it.
//  3. Augment every arc of the path by the bottleneck. core.Graph.Augment
//     moves the opposite amount along each arc's reverse.
//  4. Add the bottleneck to the running total and repeat until the sink is
//     unreachable.
//
// Complexity: O(V·E) phases, each an O(V + E) search, so O(V·E²) overall.
// The phase bound holds for any finite non-negative integer capacities, so
// the loop always terminates.
//
// After EdmondsKarp returns, the graph's arcs hold one valid maximum-flow
// assignment:
//
//   - Capacity bound: 0 ≤ Flow ≤ Capacity on every forward arc.
//   - Skew symmetry:  Flow(e) == -Flow(reverse(e)).
//   - Conservation:   inflow == outflow at every vertex except source and sink.
//   - Min-cut:        no residual source→sink path remains; MinCut returns
//     the source side and a cut whose capacity equals the flow.
//
// Verify checks the first three on any graph; MinCut extracts the cut.
//
// # API
//
//	res, err := flow.EdmondsKarp(g, source, sink,
//	    flow.WithLogger(log.WithField("graph", name)),
//	)
//	res.MaxFlow // total flow
//	res.Phases  // augmenting paths applied
//	res.Flows   // arcs with positive flow, ascending origin
//
// # Errors
//
//	ErrGraphNil         - nil graph.
//	ErrSourceOutOfRange - source outside [0, n).
//	ErrSinkOutOfRange   - sink outside [0, n).
//	ErrSameSourceSink   - source == sink.
//	ErrPhaseLimit       - WithMaxPhases limit reached with paths remaining.
//	ErrInvalidFlow      - matched by *ViolationError from Verify.
//
// A source that cannot reach the sink is not an error; the result is a flow
// of 0.
package flow
