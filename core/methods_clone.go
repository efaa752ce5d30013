// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy of a residual graph (arena, adjacency and current flows).

package core

// Clone returns a deep copy of g. Handles remain valid on the clone and
// address the same arcs.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		edges:     make([]Edge, len(g.edges)),
		adjacency: make([][]EdgeID, len(g.adjacency)),
	}
	copy(clone.edges, g.edges)
	for v, adj := range g.adjacency {
		if len(adj) == 0 {
			continue
		}
		clone.adjacency[v] = append(make([]EdgeID, 0, len(adj)), adj...)
	}

	return clone
}
