// SPDX-License-Identifier: MIT
// File: types.go
// Role: Edge, EdgeID, FlowEdge, Graph, GraphOption and sentinel errors.

package core

import "errors"

// Sentinel errors for residual graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeCapacity indicates an arc was added with capacity < 0.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrEdgeNotFound indicates an EdgeID that does not address the arena.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrAugmentOutOfRange indicates an augmentation amount outside [0, residual].
	ErrAugmentOutOfRange = errors.New("core: augmentation exceeds residual capacity")
)

// EdgeID is a handle into the Graph's edge arena.
type EdgeID int

// NoEdge is the zero-value "absent" handle, used e.g. for BFS roots.
const NoEdge EdgeID = -1

// Edge is one directed residual arc.
//
// Capacity is fixed at creation. Flow starts at 0 and only changes through
// Graph.Augment. Reverse is the handle of the paired arc running To→From.
type Edge struct {
	From     int
	To       int
	Capacity int64
	Flow     int64
	Reverse  EdgeID
}

// Residual returns Capacity - Flow.
func (e Edge) Residual() int64 { return e.Capacity - e.Flow }

// FlowEdge is an arc carrying strictly positive flow, as reported after a run.
type FlowEdge struct {
	From int
	To   int
	Flow int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes the arena for the given number of AddEdge calls.
// Each call stores two arcs; negative hints are ignored.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]Edge, 0, 2*n)
		}
	}
}

// Graph is a residual network over vertices [0, n).
//
// edges is the arena; adjacency[v] lists handles of arcs leaving v in
// insertion order.
type Graph struct {
	edges     []Edge
	adjacency [][]EdgeID
}

// NewGraph returns an empty residual graph with n vertices.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph{adjacency: make([][]EdgeID, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
