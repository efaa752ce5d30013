// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph residual network.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maxflow/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the search never discovered.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// noStop disables WithStopAt.
const noStop = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// FilterEdge can skip residual arcs by returning false.
	FilterEdge func(id core.EdgeID, e core.Edge) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// StopAt, if >= 0, ends the search the moment that vertex is discovered.
	StopAt int

	err error
}

// DefaultOptions returns Options with no limits, no filter and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(int, int) error { return nil },
		FilterEdge: func(core.EdgeID, core.Edge) bool { return true },
		StopAt:     noStop,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterEdge skips residual arcs when fn returns false.
func WithFilterEdge(fn func(id core.EdgeID, e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStopAt ends the search as soon as v is discovered. The vertex is
// recorded in Depth and Parent but is not visited.
func WithStopAt(v int) Option {
	return func(o *Options) {
		if v < 0 {
			o.err = fmt.Errorf("%w: StopAt cannot be negative (%d)", ErrOptionViolation, v)
			return
		}
		o.StopAt = v
	}
}

// Result holds the outcome of a BFS traversal.
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in arcs from the start, -1 for unreached vertices.
//   - Parent: residual arc through which each vertex was discovered.
//   - Stopped: true if the StopAt vertex was discovered.
type Result struct {
	Order   []int
	Depth   []int
	Parent  []core.EdgeID
	Stopped bool
	start   int
}

// Reached reports whether v was discovered by the search.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the arcs from the start vertex to dest, in travel order.
// The path to the start vertex itself is empty.
func (r *Result) PathTo(g *core.Graph, dest int) ([]core.EdgeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]core.EdgeID, r.Depth[dest])
	for cur, i := dest, len(path)-1; cur != r.start; i-- {
		id := r.Parent[cur]
		path[i] = id
		cur = g.Edge(id).From
	}

	return path, nil
}
