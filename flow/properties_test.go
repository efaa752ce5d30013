package flow_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/bfs"
	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/flow"
)

// randomGraph builds an n-vertex network where each ordered pair (self-loops
// included) gets an arc with probability p and capacity in [0, maxCap].
func randomGraph(t testing.TB, n int, p float64, maxCap int64, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if r.Float64() < p {
				_, err := g.AddEdge(u, v, r.Int63n(maxCap+1))
				require.NoError(t, err)
			}
		}
	}

	return g
}

// bruteForceMinCut enumerates every vertex subset containing source and not
// sink and returns the smallest crossing capacity.
func bruteForceMinCut(g *core.Graph, source, sink int) int64 {
	n := g.VertexCount()
	best := int64(-1)
	for mask := 0; mask < 1<<n; mask++ {
		if mask&(1<<source) == 0 || mask&(1<<sink) != 0 {
			continue
		}
		var c int64
		for _, e := range g.Edges() {
			if mask&(1<<e.From) != 0 && mask&(1<<e.To) == 0 {
				c += e.Capacity
			}
		}
		if best < 0 || c < best {
			best = c
		}
	}

	return best
}

// TestProperties_RandomNetworks checks every post-condition of a run:
// conservation, capacity bound, skew symmetry, max-flow = min-cut, no
// residual path afterwards and an idempotent re-run.
func TestProperties_RandomNetworks(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		n := 2 + int(seed%8)
		g := randomGraph(t, n, 0.4, 9, seed)
		source, sink := 0, n-1

		res, err := flow.EdmondsKarp(g, source, sink)
		require.NoError(t, err, "seed %d", seed)

		require.NoError(t, flow.Verify(g, source, sink), "seed %d", seed)
		for id := core.EdgeID(0); int(id) < g.ArcCount(); id++ {
			e := g.Edge(id)
			require.LessOrEqual(t, e.Flow, e.Capacity, "seed %d arc %d", seed, id)
			require.Equal(t, e.Flow, -g.Edge(e.Reverse).Flow, "seed %d arc %d", seed, id)
			if g.IsForward(id) {
				require.GreaterOrEqual(t, e.Flow, int64(0), "seed %d arc %d", seed, id)
			}
		}
		require.Equal(t, res.MaxFlow, flow.NetFlow(g, source), "seed %d", seed)
		require.Equal(t, -res.MaxFlow, flow.NetFlow(g, sink), "seed %d", seed)

		cut, err := flow.MinCut(g, source)
		require.NoError(t, err)
		require.Equal(t, res.MaxFlow, cut.Capacity, "seed %d", seed)
		require.True(t, cut.InSourceSide(source))
		require.False(t, cut.InSourceSide(sink), "seed %d: residual path survived", seed)
		require.Equal(t, bruteForceMinCut(g, source, sink), res.MaxFlow, "seed %d", seed)

		walk, err := bfs.BFS(g, source, bfs.WithStopAt(sink))
		require.NoError(t, err)
		require.False(t, walk.Stopped, "seed %d", seed)

		again, err := flow.EdmondsKarp(g, source, sink)
		require.NoError(t, err)
		require.Equal(t, int64(0), again.MaxFlow, "seed %d", seed)
		require.Equal(t, res.Flows, again.Flows, "seed %d", seed)
	}
}

// TestVerify_Conservation reports a vertex holding flow it never forwarded.
func TestVerify_Conservation(t *testing.T) {
	g := buildGraph(t, 3, arc{0, 1, 4}, arc{1, 2, 4})
	require.NoError(t, g.Augment(0, 3))

	err := flow.Verify(g, 0, 2)
	var ve *flow.ViolationError
	require.True(t, errors.As(err, &ve))
	require.True(t, errors.Is(err, flow.ErrInvalidFlow))
	require.Equal(t, flow.ConservationViolation, ve.Kind)
	require.Equal(t, 1, ve.Vertex)
	require.Equal(t, core.NoEdge, ve.Edge)
	require.Contains(t, err.Error(), "conservation violated at vertex 1")

	require.NoError(t, g.Augment(2, 3))
	require.NoError(t, flow.Verify(g, 0, 2))

	require.ErrorIs(t, flow.Verify(g, 0, 0), flow.ErrSameSourceSink)
	require.ErrorIs(t, flow.Verify(nil, 0, 1), flow.ErrGraphNil)
}

// TestMinCut_Errors covers invalid inputs.
func TestMinCut_Errors(t *testing.T) {
	_, err := flow.MinCut(nil, 0)
	require.ErrorIs(t, err, flow.ErrGraphNil)

	g := buildGraph(t, 2, arc{0, 1, 1})
	_, err = flow.MinCut(g, 5)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestViolationKind_String(t *testing.T) {
	require.Equal(t, "capacity", flow.CapacityViolation.String())
	require.Equal(t, "skew-symmetry", flow.SkewViolation.String())
	require.Equal(t, "conservation", flow.ConservationViolation.String())
	require.Equal(t, "ViolationKind(9)", flow.ViolationKind(9).String())
}
