// Package report renders the result of a max-flow run for people: the flow
// value followed by every arc carrying flow, listed either by ascending
// origin or in breadth-first order from the source.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/katalvlaran/maxflow/bfs"
	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/flow"
)

var (
	// ErrInvalidOrder is returned by ParseOrder for an unknown ordering.
	ErrInvalidOrder = errors.New("report: invalid order, choose 1 or 2")

	// ErrInvalidFormat is returned by Write for an unknown Format.
	ErrInvalidFormat = errors.New("report: invalid format")
)

// Order selects the sequence in which flow arcs are listed.
type Order int

const (
	// OrderOrigin lists arcs by ascending origin vertex ("first to last vertex order").
	OrderOrigin Order = 1
	// OrderBFS lists arcs in breadth-first visitation order from the source
	// over residual arcs ("source to sink vertex order").
	OrderBFS Order = 2
)

func (o Order) String() string {
	switch o {
	case OrderOrigin:
		return "origin"
	case OrderBFS:
		return "bfs"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// ParseOrder accepts the menu numbers "1" and "2" or the names "origin" and "bfs".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "origin":
		return OrderOrigin, nil
	case "2", "bfs":
		return OrderBFS, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// Format selects the rendering of the arc listing.
type Format string

const (
	// FormatText is the plain "(u, v, f)" listing.
	FormatText Format = "text"
	// FormatTable renders the listing as an ASCII table with a total footer.
	FormatTable Format = "table"
)

// Options configures Write.
type Options struct {
	Order  Order
	Format Format
}

// Rows returns the positive-flow arcs of g in the requested order.
func Rows(g *core.Graph, res *flow.Result, order Order) ([]core.FlowEdge, error) {
	switch order {
	case OrderOrigin:
		return g.FlowEdges(), nil
	case OrderBFS:
		walk, err := bfs.BFS(g, res.Source)
		if err != nil {
			return nil, err
		}
		var rows []core.FlowEdge
		for _, v := range walk.Order {
			rows = g.AppendFlowEdges(rows, v)
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, order)
}

// Write renders res over g to w.
func Write(w io.Writer, g *core.Graph, res *flow.Result, opts Options) error {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Format != FormatText && opts.Format != FormatTable {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, opts.Format)
	}
	rows, err := Rows(g, res, opts.Order)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Value of maximum flow from %d to %d vertices: %d\n", res.Source, res.Sink, res.MaxFlow)

	switch opts.Format {
	case FormatText:
		if opts.Order == OrderBFS {
			bw.WriteString("Flow (traversed in BFS order):\n")
		} else {
			bw.WriteString("Flow:\n")
		}
		for _, r := range rows {
			fmt.Fprintf(bw, "(%d, %d, %d)\n", r.From, r.To, r.Flow)
		}
	case FormatTable:
		writeTable(bw, rows, res.MaxFlow)
	}

	return bw.Flush()
}

// writeTable renders rows with tablewriter.
func writeTable(w io.Writer, rows []core.FlowEdge, total int64) {
	var table = tablewriter.NewWriter(w)
	table.SetHeader([]string{"From", "To", "Flow"})
	table.SetAutoFormatHeaders(false)
	for _, r := range rows {
		table.Append([]string{
			strconv.Itoa(r.From),
			strconv.Itoa(r.To),
			humanize.Comma(r.Flow),
		})
	}
	table.SetFooter([]string{"", "Total", humanize.Comma(total)})
	table.Render()
}

// WriteFile renders res into path on fs, truncating any existing file.
func WriteFile(fs afero.Fs, path string, g *core.Graph, res *flow.Result, opts Options) error {
	f, err := fs.Create(path)
	if err != nil {
		return pkgerrors.WithMessagef(err, "creating output file %q", path)
	}
	if err = Write(f, g, res, opts); err != nil {
		_ = f.Close()
		return pkgerrors.WithMessagef(err, "writing %q", path)
	}

	return pkgerrors.WithMessagef(f.Close(), "closing %q", path)
}
