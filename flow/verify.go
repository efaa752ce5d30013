package flow

import (
	"fmt"

	"github.com/katalvlaran/maxflow/core"
)

// ViolationKind classifies a broken flow invariant.
type ViolationKind int

const (
	// CapacityViolation: a forward arc carries Flow outside [0, Capacity].
	CapacityViolation ViolationKind = iota + 1
	// SkewViolation: Flow(e) != -Flow(reverse(e)).
	SkewViolation
	// ConservationViolation: a vertex other than source and sink has net flow.
	ConservationViolation
)

func (k ViolationKind) String() string {
	switch k {
	case CapacityViolation:
		return "capacity"
	case SkewViolation:
		return "skew-symmetry"
	case ConservationViolation:
		return "conservation"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// ViolationError describes the first invariant Verify found broken.
// Edge is core.NoEdge for conservation violations.
type ViolationError struct {
	Kind   ViolationKind
	Vertex int
	Edge   core.EdgeID
	Detail string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("flow: %s violated at vertex %d: %s", e.Kind, e.Vertex, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInvalidFlow) match any violation.
func (e *ViolationError) Unwrap() error { return ErrInvalidFlow }

// Verify checks that g holds a valid flow from source to sink: capacity
// bounds and skew symmetry on every pair, and conservation at every other
// vertex. It returns nil or a *ViolationError.
//
// Complexity: O(V + E)
func Verify(g *core.Graph, source, sink int) error {
	if err := validateEndpoints(g, source, sink); err != nil {
		return err
	}
	for id := core.EdgeID(0); int(id) < g.ArcCount(); id += 2 {
		e, r := g.Edge(id), g.Edge(g.Reverse(id))
		if e.Flow < 0 || e.Flow > e.Capacity {
			return &ViolationError{
				Kind: CapacityViolation, Vertex: e.From, Edge: id,
				Detail: fmt.Sprintf("arc %d→%d flow %d capacity %d", e.From, e.To, e.Flow, e.Capacity),
			}
		}
		if e.Flow != -r.Flow || r.Capacity != 0 {
			return &ViolationError{
				Kind: SkewViolation, Vertex: e.From, Edge: id,
				Detail: fmt.Sprintf("arc %d→%d flow %d, reverse flow %d capacity %d",
					e.From, e.To, e.Flow, r.Flow, r.Capacity),
			}
		}
	}
	for v := 0; v < g.VertexCount(); v++ {
		if v == source || v == sink {
			continue
		}
		if net := NetFlow(g, v); net != 0 {
			return &ViolationError{
				Kind: ConservationViolation, Vertex: v, Edge: core.NoEdge,
				Detail: fmt.Sprintf("net outflow %d", net),
			}
		}
	}

	return nil
}
