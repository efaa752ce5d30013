package flow

import (
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/bfs"
	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/metrics"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for fewest-hop augmenting paths), mutating the
// flows of g in place.
//
// Flow already present on g is kept and extended: the returned MaxFlow is
// what this run added. On a fresh graph that is the maximum flow; on a graph
// already at maximum flow it is 0 and NetFlow(g, source) still reports the
// total.
//
// Complexity: O(V · E²)
// Memory:     O(V) per phase
func EdmondsKarp(g *core.Graph, source, sink int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validateEndpoints(g, source, sink); err != nil {
		metrics.SolveTotal.WithLabelValues(metrics.Fail).Inc()
		return nil, err
	}

	started := time.Now()
	res := &Result{Source: source, Sink: sink}

	for {
		path, err := augmentingPath(g, source, sink)
		if err != nil {
			metrics.SolveTotal.WithLabelValues(metrics.Fail).Inc()
			return nil, err
		}
		if path == nil {
			break
		}
		if o.MaxPhases > 0 && res.Phases >= o.MaxPhases {
			metrics.SolveTotal.WithLabelValues(metrics.Fail).Inc()
			return nil, fmt.Errorf("%w: %d phases, flow %d so far", ErrPhaseLimit, res.Phases, res.MaxFlow)
		}

		amount := bottleneck(g, path)
		for _, id := range path {
			if err := g.Augment(id, amount); err != nil {
				// Unreachable: amount never exceeds any residual on the path.
				panic(err)
			}
		}
		res.MaxFlow += amount
		res.Phases++

		o.Logger.WithFields(log.Fields{
			"phase":      res.Phases,
			"bottleneck": amount,
			"hops":       len(path),
			"total":      res.MaxFlow,
		}).Debug("augmented path")
		metrics.AugmentingPathsTotal.Inc()
		metrics.FlowUnitsTotal.Add(float64(amount))
	}

	res.Flows = g.FlowEdges()
	metrics.SolveTotal.WithLabelValues(metrics.Ok).Inc()
	metrics.SolveDurationSeconds.Observe(time.Since(started).Seconds())

	return res, nil
}

// augmentingPath returns the arcs of a fewest-hop residual path source→sink,
// or nil if the sink is unreachable.
func augmentingPath(g *core.Graph, source, sink int) ([]core.EdgeID, error) {
	walk, err := bfs.BFS(g, source, bfs.WithStopAt(sink))
	if err != nil {
		return nil, err
	}
	if !walk.Stopped {
		return nil, nil
	}

	return walk.PathTo(g, sink)
}

// bottleneck walks path backward from the sink and returns the smallest
// residual capacity on it.
func bottleneck(g *core.Graph, path []core.EdgeID) int64 {
	amount := int64(math.MaxInt64)
	for i := len(path) - 1; i >= 0; i-- {
		if r := g.ResidualCapacity(path[i]); r < amount {
			amount = r
		}
	}

	return amount
}

// NetFlow returns the net outflow of v: flow on arcs leaving v minus flow on
// arcs entering it. Every arc into v has its reverse in v's adjacency with
// negated flow, so the sum over v's adjacency is exactly that difference.
func NetFlow(g *core.Graph, v int) int64 {
	var net int64
	for _, id := range g.Adjacent(v) {
		net += g.Edge(id).Flow
	}

	return net
}
