package flow_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/flow"
	"github.com/katalvlaran/maxflow/metrics"
)

// arc is a (from, to, capacity) triple used to build fixtures.
type arc struct {
	from, to int
	cap      int64
}

// buildGraph constructs an n-vertex residual graph from arcs.
func buildGraph(t testing.TB, n int, arcs ...arc) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithEdgeCapacity(len(arcs)))
	require.NoError(t, err)
	for _, a := range arcs {
		_, err := g.AddEdge(a.from, a.to, a.cap)
		require.NoError(t, err)
	}

	return g
}

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
}

// TestTwoPaths: 0→1(3), 0→2(2), 1→3(2), 2→3(3) ⇒ maxFlow = 4.
func (s *EdmondsKarpSuite) TestTwoPaths() {
	g := buildGraph(s.T(), 4, arc{0, 1, 3}, arc{0, 2, 2}, arc{1, 3, 2}, arc{2, 3, 3})

	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), res.MaxFlow)
	require.Equal(s.T(), 2, res.Phases)
	require.Equal(s.T(), []core.FlowEdge{
		{From: 0, To: 1, Flow: 2},
		{From: 0, To: 2, Flow: 2},
		{From: 1, To: 3, Flow: 2},
		{From: 2, To: 3, Flow: 2},
	}, res.Flows)
	require.NoError(s.T(), flow.Verify(g, 0, 3))
}

// TestDisconnectedSink: no arcs into the sink ⇒ maxFlow = 0, no error.
func (s *EdmondsKarpSuite) TestDisconnectedSink() {
	g := buildGraph(s.T(), 4, arc{0, 1, 3}, arc{0, 2, 2}, arc{1, 2, 2}, arc{3, 1, 9})

	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), res.MaxFlow)
	require.Equal(s.T(), 0, res.Phases)
	require.Empty(s.T(), res.Flows)
}

// TestSingleEdge: 0→1 (cap=5) ⇒ maxFlow = 5 with exactly one positive arc.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	g := buildGraph(s.T(), 2, arc{0, 1, 5})

	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.MaxFlow)
	require.Equal(s.T(), []core.FlowEdge{{From: 0, To: 1, Flow: 5}}, res.Flows)
	require.Equal(s.T(), int64(0), g.ResidualCapacity(0), "forward exhausted")
	require.Equal(s.T(), int64(5), g.ResidualCapacity(1), "reverse arc carries flow")
}

// TestDiamondBottleneck: two wide diamonds joined by a cap-1 middle arc.
//
//	   1       5
//	 ↗   ↘   ↗   ↘
//	0     3→4     7
//	 ↘   ↗   ↘   ↗
//	   2       6
//
// Every source→sink path crosses 3→4, so the flow is 1 whatever the other
// capacities are.
func (s *EdmondsKarpSuite) TestDiamondBottleneck() {
	for _, wide := range []int64{1, 10, 1 << 40} {
		g := buildGraph(s.T(), 8,
			arc{0, 1, wide}, arc{0, 2, wide}, arc{1, 3, wide}, arc{2, 3, wide},
			arc{3, 4, 1},
			arc{4, 5, wide}, arc{4, 6, wide}, arc{5, 7, wide}, arc{6, 7, wide},
		)
		res, err := flow.EdmondsKarp(g, 0, 7)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(1), res.MaxFlow, "wide=%d", wide)
		require.Equal(s.T(), 1, res.Phases)

		cut, err := flow.MinCut(g, 0)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []int{0, 1, 2, 3}, cut.SourceSide)
		require.Len(s.T(), cut.Edges, 1)
		require.Equal(s.T(), 3, cut.Edges[0].From)
		require.Equal(s.T(), 4, cut.Edges[0].To)
	}
}

// TestCancellationThroughReverse needs a reverse arc to reach the optimum.
//
// BFS first takes 0→1→2→5. The second path 0→3→2→1→4→5 exists only
// through the reverse of 1→2, cancelling the flow the first path put there.
func (s *EdmondsKarpSuite) TestCancellationThroughReverse() {
	g := buildGraph(s.T(), 6,
		arc{0, 1, 1}, arc{1, 2, 1}, arc{2, 5, 1},
		arc{0, 3, 1}, arc{3, 2, 1},
		arc{1, 4, 1}, arc{4, 5, 1},
	)
	res, err := flow.EdmondsKarp(g, 0, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.MaxFlow)
	require.NoError(s.T(), flow.Verify(g, 0, 5))

	cut, err := flow.MinCut(g, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.MaxFlow, cut.Capacity)
}

// TestSelfLoopAndParallelArcs: loops never advance, parallel arcs add up.
func (s *EdmondsKarpSuite) TestSelfLoopAndParallelArcs() {
	g := buildGraph(s.T(), 3,
		arc{0, 0, 10},
		arc{0, 1, 2}, arc{0, 1, 3},
		arc{1, 1, 7},
		arc{1, 2, 4},
	)
	res, err := flow.EdmondsKarp(g, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), res.MaxFlow)
	require.Equal(s.T(), int64(0), g.Edge(0).Flow, "self-loop carries no flow")
	require.NoError(s.T(), flow.Verify(g, 0, 2))
}

// TestRerunIsIdempotent: a second run finds no augmenting path.
func (s *EdmondsKarpSuite) TestRerunIsIdempotent() {
	g := buildGraph(s.T(), 4, arc{0, 1, 3}, arc{0, 2, 2}, arc{1, 3, 2}, arc{2, 3, 3})

	first, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	before := g.FlowEdges()

	second, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), second.MaxFlow)
	require.Equal(s.T(), 0, second.Phases)
	require.Equal(s.T(), before, g.FlowEdges())
	require.Equal(s.T(), first.MaxFlow, flow.NetFlow(g, 0))
	require.Equal(s.T(), -first.MaxFlow, flow.NetFlow(g, 3))

	g.Reset()
	again, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.MaxFlow, again.MaxFlow)
}

// TestInvalidEndpoints covers every rejected source/sink selection.
func (s *EdmondsKarpSuite) TestInvalidEndpoints() {
	g := buildGraph(s.T(), 3, arc{0, 1, 1}, arc{1, 2, 1})

	cases := []struct {
		name         string
		source, sink int
		want         error
	}{
		{"source negative", -1, 2, flow.ErrSourceOutOfRange},
		{"source too large", 3, 2, flow.ErrSourceOutOfRange},
		{"sink negative", 0, -4, flow.ErrSinkOutOfRange},
		{"sink too large", 0, 3, flow.ErrSinkOutOfRange},
		{"same vertex", 1, 1, flow.ErrSameSourceSink},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := flow.EdmondsKarp(g, tc.source, tc.sink)
			require.Nil(s.T(), res)
			require.True(s.T(), errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := flow.EdmondsKarp(nil, 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
	require.Empty(s.T(), g.FlowEdges(), "rejected runs must not touch flows")
}

// TestOptions covers WithMaxPhases and WithLogger.
func (s *EdmondsKarpSuite) TestOptions() {
	newGraph := func() *core.Graph {
		return buildGraph(s.T(), 4, arc{0, 1, 3}, arc{0, 2, 2}, arc{1, 3, 2}, arc{2, 3, 3})
	}

	_, err := flow.EdmondsKarp(newGraph(), 0, 3, flow.WithMaxPhases(-1))
	require.ErrorIs(s.T(), err, flow.ErrOptionViolation)

	_, err = flow.EdmondsKarp(newGraph(), 0, 3, flow.WithMaxPhases(1))
	require.ErrorIs(s.T(), err, flow.ErrPhaseLimit)

	res, err := flow.EdmondsKarp(newGraph(), 0, 3, flow.WithMaxPhases(2))
	require.NoError(s.T(), err, "limit equal to the phases needed is not exceeded")
	require.Equal(s.T(), int64(4), res.MaxFlow)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	_, err = flow.EdmondsKarp(newGraph(), 0, 3, flow.WithLogger(logger.WithField("graph", "two-paths")))
	require.NoError(s.T(), err)
	require.Len(s.T(), hook.AllEntries(), 2)

	last := hook.LastEntry()
	require.Equal(s.T(), "augmented path", last.Message)
	require.Equal(s.T(), "two-paths", last.Data["graph"])
	require.Equal(s.T(), 2, last.Data["phase"])
	require.Equal(s.T(), int64(4), last.Data["total"])
}

// TestMetrics checks counters move by what a run reports.
func (s *EdmondsKarpSuite) TestMetrics() {
	paths := testutil.ToFloat64(metrics.AugmentingPathsTotal)
	units := testutil.ToFloat64(metrics.FlowUnitsTotal)
	ok := testutil.ToFloat64(metrics.SolveTotal.WithLabelValues(metrics.Ok))
	fail := testutil.ToFloat64(metrics.SolveTotal.WithLabelValues(metrics.Fail))

	g := buildGraph(s.T(), 4, arc{0, 1, 3}, arc{0, 2, 2}, arc{1, 3, 2}, arc{2, 3, 3})
	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	_, err = flow.EdmondsKarp(g, 2, 2)
	require.Error(s.T(), err)

	require.Equal(s.T(), paths+float64(res.Phases), testutil.ToFloat64(metrics.AugmentingPathsTotal))
	require.Equal(s.T(), units+float64(res.MaxFlow), testutil.ToFloat64(metrics.FlowUnitsTotal))
	require.Equal(s.T(), ok+1, testutil.ToFloat64(metrics.SolveTotal.WithLabelValues(metrics.Ok)))
	require.Equal(s.T(), fail+1, testutil.ToFloat64(metrics.SolveTotal.WithLabelValues(metrics.Fail)))
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
