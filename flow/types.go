package flow

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxflow/core"
)

// Sentinel errors for max-flow computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not a vertex.
	ErrSourceOutOfRange = errors.New("flow: source vertex out of range")

	// ErrSinkOutOfRange is returned when the sink index is not a vertex.
	ErrSinkOutOfRange = errors.New("flow: sink vertex out of range")

	// ErrSameSourceSink is returned when source and sink coincide.
	ErrSameSourceSink = errors.New("flow: source and sink must differ")

	// ErrPhaseLimit is returned when WithMaxPhases stops a run that still
	// had augmenting paths.
	ErrPhaseLimit = errors.New("flow: augmenting phase limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrInvalidFlow is matched by every *ViolationError.
	ErrInvalidFlow = errors.New("flow: invalid flow assignment")
)

// Option configures EdmondsKarp.
type Option func(*Options)

// Options holds engine parameters.
//   - Logger: receives one Debug entry per augmentation.
//   - MaxPhases: if > 0, abort with ErrPhaseLimit after that many augmentations.
type Options struct {
	Logger    *log.Entry
	MaxPhases int
	err       error
}

// DefaultOptions returns Options logging to the standard logrus logger with
// no phase limit.
func DefaultOptions() Options {
	return Options{Logger: log.NewEntry(log.StandardLogger())}
}

// WithLogger sets the entry augmentations are logged to.
func WithLogger(entry *log.Entry) Option {
	return func(o *Options) {
		if entry != nil {
			o.Logger = entry
		}
	}
}

// WithMaxPhases caps the number of augmenting paths. 0 means unlimited.
func WithMaxPhases(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPhases cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPhases = n
	}
}

// Result is the outcome of one EdmondsKarp run.
type Result struct {
	Source  int
	Sink    int
	MaxFlow int64
	// Phases is the number of augmenting paths applied by this run.
	Phases int
	// Flows lists arcs with positive flow after the run, ascending origin.
	Flows []core.FlowEdge
}

// validateEndpoints rejects nil graphs and degenerate source/sink selections.
func validateEndpoints(g *core.Graph, source, sink int) error {
	switch {
	case g == nil:
		return ErrGraphNil
	case !g.HasVertex(source):
		return fmt.Errorf("%w: %d (vertices=%d)", ErrSourceOutOfRange, source, g.VertexCount())
	case !g.HasVertex(sink):
		return fmt.Errorf("%w: %d (vertices=%d)", ErrSinkOutOfRange, sink, g.VertexCount())
	case source == sink:
		return fmt.Errorf("%w: %d", ErrSameSourceSink, source)
	}

	return nil
}
