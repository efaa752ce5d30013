// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Arc lifecycle & queries: AddEdge, Edge, Reverse, Adjacent, counts.
// Determinism:
//   - Adjacent(v) returns handles in insertion order.
//   - Handles are dense and monotonic: the k-th AddEdge yields 2k (forward) and 2k+1 (reverse).

package core

import "fmt"

// AddEdge inserts a capacitated arc from→to and its zero-capacity reverse,
// links them as a pair and appends each to its origin's adjacency.
// It returns the handle of the forward arc.
//
// Self-loops are stored like any other arc; both halves land in adjacency[from].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, capacity int64) (EdgeID, error) {
	if !g.HasVertex(from) {
		return NoEdge, fmt.Errorf("%w: from=%d (vertices=%d)", ErrVertexOutOfRange, from, len(g.adjacency))
	}
	if !g.HasVertex(to) {
		return NoEdge, fmt.Errorf("%w: to=%d (vertices=%d)", ErrVertexOutOfRange, to, len(g.adjacency))
	}
	if capacity < 0 {
		return NoEdge, fmt.Errorf("%w: %d→%d capacity %d", ErrNegativeCapacity, from, to, capacity)
	}

	fwd := EdgeID(len(g.edges))
	rev := fwd + 1
	g.edges = append(g.edges,
		Edge{From: from, To: to, Capacity: capacity, Reverse: rev},
		Edge{From: to, To: from, Capacity: 0, Reverse: fwd},
	)
	g.adjacency[from] = append(g.adjacency[from], fwd)
	g.adjacency[to] = append(g.adjacency[to], rev)

	return fwd, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of AddEdge calls (forward arcs only).
func (g *Graph) EdgeCount() int { return len(g.edges) / 2 }

// ArcCount returns the number of arcs in the arena, reverses included.
func (g *Graph) ArcCount() int { return len(g.edges) }

// HasVertex reports whether v is in [0, VertexCount()).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adjacency) }

// HasEdge reports whether id addresses an arc of the arena.
func (g *Graph) HasEdge(id EdgeID) bool { return id >= 0 && int(id) < len(g.edges) }

// IsForward reports whether id is the capacitated half of its pair.
func (g *Graph) IsForward(id EdgeID) bool { return id&1 == 0 }

// Edge returns a copy of the arc addressed by id.
// It panics if id is not in the arena, like an out-of-range slice index.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Reverse returns the handle of id's paired arc.
func (g *Graph) Reverse(id EdgeID) EdgeID { return g.edges[id].Reverse }

// Adjacent returns the handles of arcs leaving v, in insertion order.
// The returned slice is owned by the Graph and must not be modified.
// It returns nil when v is out of range.
func (g *Graph) Adjacent(v int) []EdgeID {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adjacency[v]
}

// Edges returns copies of every forward arc in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for id := 0; id < len(g.edges); id += 2 {
		out = append(out, g.edges[id])
	}

	return out
}
