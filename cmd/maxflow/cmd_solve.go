package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/edgelist"
	"github.com/katalvlaran/maxflow/flow"
	mbp "github.com/katalvlaran/maxflow/mainboilerplate"
	"github.com/katalvlaran/maxflow/report"
)

type cmdSolve struct {
	Output    string `short:"o" long:"output" env:"OUTPUT" default:"output.txt" description:"Path of the report to write"`
	Source    int    `long:"source" default:"-1" description:"Source vertex. Prompted for when negative"`
	Sink      int    `long:"sink" default:"-1" description:"Sink vertex. Prompted for when negative"`
	Order     string `long:"order" env:"ORDER" choice:"1" choice:"2" choice:"origin" choice:"bfs" description:"Report order: 1/origin (first to last vertex) or 2/bfs (source to sink). Prompted for when empty"`
	Format    string `long:"format" env:"FORMAT" default:"text" choice:"text" choice:"table" description:"Report format"`
	Verify    bool   `long:"verify" description:"Check flow invariants and the max-flow/min-cut equality before writing"`
	MaxPhases int    `long:"max-phases" default:"0" description:"Abort after this many augmenting paths (0 = unlimited)"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Binary edge-list file"`
	} `positional-args:"yes" required:"yes"`

	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
}

func (cmd *cmdSolve) Execute([]string) error {
	mbp.InitLog(Config.Log)
	if cmd.fs == nil {
		cmd.fs, cmd.stdin, cmd.stdout = afero.NewOsFs(), os.Stdin, os.Stdout
	}

	var err = cmd.run()
	if mErr := mbp.WriteMetrics(Config.Metrics); mErr != nil {
		log.WithField("err", mErr).Warn("failed to write metrics")
	}
	return err
}

// run reads the input, solves it and writes the report. Prompts, if needed,
// follow the original interaction: endpoints after loading, order after solving.
func (cmd *cmdSolve) run() error {
	var el, err = edgelist.ReadFile(cmd.fs, cmd.Args.Input)
	if err != nil {
		return err
	}
	var fields = log.Fields{
		"input":    cmd.Args.Input,
		"vertices": el.Vertices,
		"arcs":     humanize.Comma(int64(len(el.Arcs))),
	}
	if fi, err := cmd.fs.Stat(cmd.Args.Input); err == nil {
		fields["size"] = humanize.IBytes(uint64(fi.Size()))
	}
	log.WithFields(fields).Info("loaded edge list")

	g, err := el.Build()
	if err != nil {
		return err
	}

	var prompt = newPrompter(cmd.stdin, cmd.stdout)
	if cmd.Source < 0 {
		if cmd.Source, err = prompt.vertex("source"); err != nil {
			return err
		}
	}
	if cmd.Sink < 0 {
		if cmd.Sink, err = prompt.vertex("sink"); err != nil {
			return err
		}
	}

	res, err := flow.EdmondsKarp(g, cmd.Source, cmd.Sink,
		flow.WithLogger(log.WithField("input", cmd.Args.Input)),
		flow.WithMaxPhases(cmd.MaxPhases),
	)
	if err != nil {
		return err
	}
	var resFields = log.Fields{
		"source":  res.Source,
		"sink":    res.Sink,
		"maxFlow": res.MaxFlow,
		"phases":  res.Phases,
	}
	if res.MaxFlow == 0 {
		log.WithFields(resFields).Warn("no augmenting path from source to sink; maximum flow is zero")
	} else {
		log.WithFields(resFields).Info("computed maximum flow")
	}

	if cmd.Verify {
		if err = verify(g, res); err != nil {
			return err
		}
	}

	var order report.Order
	if cmd.Order != "" {
		order, err = report.ParseOrder(cmd.Order)
	} else {
		order, err = prompt.order()
	}
	if err != nil {
		return errors.WithMessage(err, "Invalid option selected. Please choose 1 or 2")
	}

	if err = report.WriteFile(cmd.fs, cmd.Output, g, res, report.Options{
		Order:  order,
		Format: report.Format(cmd.Format),
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.stdout, "Max flow calculated and written to %s\n", cmd.Output)
	return nil
}

// verify checks the flow assignment and its min-cut certificate.
func verify(g *core.Graph, res *flow.Result) error {
	if err := flow.Verify(g, res.Source, res.Sink); err != nil {
		return err
	}
	cut, err := flow.MinCut(g, res.Source)
	if err != nil {
		return err
	}
	if cut.Capacity != res.MaxFlow || cut.InSourceSide(res.Sink) {
		return fmt.Errorf("%w: min cut capacity %d, max flow %d", flow.ErrInvalidFlow, cut.Capacity, res.MaxFlow)
	}
	log.WithFields(log.Fields{
		"sourceSide": len(cut.SourceSide),
		"cutArcs":    len(cut.Edges),
		"capacity":   cut.Capacity,
	}).Info("verified max-flow/min-cut equality")
	return nil
}
