package bfs

import (
	"fmt"

	"github.com/katalvlaran/maxflow/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g's residual network starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.EdgeID, n),
			start:  start,
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = core.NoEdge
	}

	w.enqueue(start, 0, core.NoEdge)
	if start == o.StopAt {
		w.res.Stopped = true
		return w.res, nil
	}

	return w.res, w.loop()
}

// enqueue records v's depth and parent arc and adds it to the queue.
func (w *walker) enqueue(v, depth int, parent core.EdgeID) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: depth})
}

// loop processes the queue until empty, error or the stop vertex appears.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if w.enqueueNeighbors(item) {
			w.res.Stopped = true
			return nil
		}
	}

	return nil
}

// enqueueNeighbors discovers every unseen vertex reachable over a residual arc
// of item.v. It reports true once the StopAt vertex has been discovered.
func (w *walker) enqueueNeighbors(item queueItem) bool {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return false
	}
	for _, id := range w.graph.Adjacent(item.v) {
		e := w.graph.Edge(id)
		if w.res.Depth[e.To] >= 0 || e.Residual() <= 0 {
			continue
		}
		if !w.opts.FilterEdge(id, e) {
			continue
		}
		w.enqueue(e.To, next, id)
		if e.To == w.opts.StopAt {
			return true
		}
	}

	return false
}
