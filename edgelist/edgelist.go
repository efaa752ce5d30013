package edgelist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/katalvlaran/maxflow/core"
)

// Sentinel errors for edge-list decoding and encoding.
var (
	// ErrEmptyInput is returned when the stream ends before the vertex count.
	ErrEmptyInput = errors.New("edgelist: missing vertex count header")

	// ErrNegativeVertexCount is returned for a header below zero.
	ErrNegativeVertexCount = errors.New("edgelist: negative vertex count")

	// ErrTruncatedRecord is returned when the stream ends inside a record.
	ErrTruncatedRecord = errors.New("edgelist: truncated record")

	// ErrVertexOutOfRange is returned for an endpoint outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("edgelist: vertex index out of range")

	// ErrNegativeCapacity is returned for a capacity below zero.
	ErrNegativeCapacity = errors.New("edgelist: negative capacity")

	// ErrValueOverflow is returned by Encode for values that do not fit int16.
	ErrValueOverflow = errors.New("edgelist: value does not fit int16")
)

// recordSize is the encoded size of one Arc.
const recordSize = 6

// Arc is one capacitated directed arc description.
type Arc struct {
	From     int
	To       int
	Capacity int64
}

// EdgeList is a decoded input: a vertex count and arcs in file order.
type EdgeList struct {
	Vertices int
	Arcs     []Arc
}

// RecordError locates a malformed record by its zero-based index.
type RecordError struct {
	Index int
	Arc   Arc
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("edgelist: record %d (%d, %d, %d): %v",
		e.Index, e.Arc.From, e.Arc.To, e.Arc.Capacity, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Decode reads a binary edge list from r.
func Decode(r io.Reader) (*EdgeList, error) {
	br := bufio.NewReader(r)

	var header int16
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrEmptyInput
		}
		return nil, err
	}
	if header < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, header)
	}

	el := &EdgeList{Vertices: int(header)}
	var rec [3]int16
	for index := 0; ; index++ {
		err := binary.Read(br, binary.LittleEndian, &rec)
		if errors.Is(err, io.EOF) {
			return el, nil
		} else if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &RecordError{Index: index, Err: ErrTruncatedRecord}
		} else if err != nil {
			return nil, err
		}

		a := Arc{From: int(rec[0]), To: int(rec[1]), Capacity: int64(rec[2])}
		if err := el.check(a); err != nil {
			return nil, &RecordError{Index: index, Arc: a, Err: err}
		}
		el.Arcs = append(el.Arcs, a)
	}
}

// check validates a against the vertex count.
func (el *EdgeList) check(a Arc) error {
	switch {
	case a.From < 0 || a.From >= el.Vertices:
		return fmt.Errorf("%w: origin %d (vertices=%d)", ErrVertexOutOfRange, a.From, el.Vertices)
	case a.To < 0 || a.To >= el.Vertices:
		return fmt.Errorf("%w: destination %d (vertices=%d)", ErrVertexOutOfRange, a.To, el.Vertices)
	case a.Capacity < 0:
		return ErrNegativeCapacity
	}

	return nil
}

// Encode writes el to w in the binary format.
func Encode(w io.Writer, el *EdgeList) error {
	if el.Vertices < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVertexCount, el.Vertices)
	}
	if el.Vertices > math.MaxInt16 {
		return fmt.Errorf("%w: vertex count %d", ErrValueOverflow, el.Vertices)
	}

	buf := make([]byte, 2, 2+recordSize*len(el.Arcs))
	binary.LittleEndian.PutUint16(buf, uint16(el.Vertices))
	for i, a := range el.Arcs {
		if err := el.check(a); err != nil {
			return &RecordError{Index: i, Arc: a, Err: err}
		}
		if a.Capacity > math.MaxInt16 {
			return &RecordError{Index: i, Arc: a, Err: ErrValueOverflow}
		}
		buf = binary.LittleEndian.AppendUint16(buf, uint16(a.From))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(a.To))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(a.Capacity))
	}
	_, err := w.Write(buf)

	return err
}

// Build returns a residual graph holding el's arcs in file order.
func (el *EdgeList) Build() (*core.Graph, error) {
	g, err := core.NewGraph(el.Vertices, core.WithEdgeCapacity(len(el.Arcs)))
	if err != nil {
		return nil, err
	}
	for i, a := range el.Arcs {
		if _, err := g.AddEdge(a.From, a.To, a.Capacity); err != nil {
			return nil, &RecordError{Index: i, Arc: a, Err: err}
		}
	}

	return g, nil
}

// Random returns a deterministic random network of n vertices in which each
// ordered pair u≠v receives an arc with probability p and a capacity in
// [1, maxCap].
func Random(n int, p float64, maxCap int64, seed int64) *EdgeList {
	r := rand.New(rand.NewSource(seed))
	el := &EdgeList{Vertices: n}
	if maxCap < 1 {
		maxCap = 1
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				el.Arcs = append(el.Arcs, Arc{From: u, To: v, Capacity: r.Int63n(maxCap) + 1})
			}
		}
	}

	return el
}
