package flow

import (
	"github.com/katalvlaran/maxflow/bfs"
	"github.com/katalvlaran/maxflow/core"
)

// Cut is an s–t cut of a residual network.
//   - SourceSide: vertices reachable from the source in the residual graph, ascending.
//   - Edges: forward arcs from the source side to the sink side.
//   - Capacity: sum of Edges capacities.
type Cut struct {
	SourceSide []int
	Edges      []core.Edge
	Capacity   int64
	inSource   []bool
}

// InSourceSide reports whether v lies on the source side of the cut.
func (c *Cut) InSourceSide(v int) bool {
	return v >= 0 && v < len(c.inSource) && c.inSource[v]
}

// MinCut returns the cut induced by residual reachability from source.
// Once EdmondsKarp has terminated, every crossing arc is saturated and
// Capacity equals the maximum flow value.
//
// Complexity: O(V + E)
func MinCut(g *core.Graph, source int) (*Cut, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	walk, err := bfs.BFS(g, source)
	if err != nil {
		return nil, err
	}

	cut := &Cut{inSource: make([]bool, g.VertexCount())}
	for v := 0; v < g.VertexCount(); v++ {
		if walk.Reached(v) {
			cut.inSource[v] = true
			cut.SourceSide = append(cut.SourceSide, v)
		}
	}
	for _, v := range cut.SourceSide {
		for _, id := range g.Adjacent(v) {
			e := g.Edge(id)
			if g.IsForward(id) && !cut.inSource[e.To] {
				cut.Edges = append(cut.Edges, e)
				cut.Capacity += e.Capacity
			}
		}
	}

	return cut, nil
}
