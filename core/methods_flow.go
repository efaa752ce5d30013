// SPDX-License-Identifier: MIT
// File: methods_flow.go
// Role: Flow queries and the single flow mutator (Augment), plus FlowEdges/Reset.

package core

import "fmt"

// ResidualCapacity returns Capacity - Flow of the arc addressed by id.
// It panics if id is not in the arena.
// Complexity: O(1)
func (g *Graph) ResidualCapacity(id EdgeID) int64 {
	e := &g.edges[id]

	return e.Capacity - e.Flow
}

// Augment pushes amount units of flow along id: Flow(id) += amount and
// Flow(Reverse(id)) -= amount.
//
// amount must lie in [0, ResidualCapacity(id)]; otherwise nothing is mutated
// and ErrAugmentOutOfRange is returned.
// Complexity: O(1)
func (g *Graph) Augment(id EdgeID, amount int64) error {
	if !g.HasEdge(id) {
		return fmt.Errorf("%w: id=%d", ErrEdgeNotFound, id)
	}
	e := &g.edges[id]
	if amount < 0 || amount > e.Capacity-e.Flow {
		return fmt.Errorf("%w: %d on %d→%d (residual %d)",
			ErrAugmentOutOfRange, amount, e.From, e.To, e.Capacity-e.Flow)
	}
	e.Flow += amount
	g.edges[e.Reverse].Flow -= amount

	return nil
}

// FlowEdges returns every arc with strictly positive flow, ordered by
// ascending origin and then adjacency order.
//
// Only forward arcs can carry positive flow, since a reverse arc has
// capacity 0 and its flow is the negated flow of its partner.
func (g *Graph) FlowEdges() []FlowEdge {
	var out []FlowEdge
	for from := range g.adjacency {
		out = g.AppendFlowEdges(out, from)
	}

	return out
}

// AppendFlowEdges appends the positive-flow arcs leaving v to dst.
func (g *Graph) AppendFlowEdges(dst []FlowEdge, v int) []FlowEdge {
	for _, id := range g.Adjacent(v) {
		if e := g.edges[id]; e.Flow > 0 {
			dst = append(dst, FlowEdge{From: e.From, To: e.To, Flow: e.Flow})
		}
	}

	return dst
}

// Reset zeroes the flow of every arc, restoring the graph to its built state.
func (g *Graph) Reset() {
	for i := range g.edges {
		g.edges[i].Flow = 0
	}
}
