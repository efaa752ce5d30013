package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/maxflow/edgelist"
	mbp "github.com/katalvlaran/maxflow/mainboilerplate"
)

type cmdGenerate struct {
	Vertices    int     `long:"vertices" default:"16" description:"Number of vertices"`
	Density     float64 `long:"density" default:"0.2" description:"Probability of an arc between each ordered vertex pair"`
	MaxCapacity int64   `long:"max-capacity" default:"100" description:"Arc capacities are drawn uniformly from [1, max-capacity]"`
	Seed        int64   `long:"seed" default:"1" description:"Random seed; equal seeds produce equal files"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Binary edge-list file to write"`
	} `positional-args:"yes" required:"yes"`

	fs afero.Fs
}

func (cmd *cmdGenerate) Execute([]string) error {
	mbp.InitLog(Config.Log)
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}
	return cmd.run()
}

func (cmd *cmdGenerate) run() error {
	switch {
	case cmd.Vertices < 0 || cmd.Vertices > math.MaxInt16:
		return fmt.Errorf("--vertices must be in [0, %d], got %d", math.MaxInt16, cmd.Vertices)
	case cmd.Density < 0 || cmd.Density > 1:
		return fmt.Errorf("--density must be in [0, 1], got %g", cmd.Density)
	case cmd.MaxCapacity < 1 || cmd.MaxCapacity > math.MaxInt16:
		return fmt.Errorf("--max-capacity must be in [1, %d], got %d", math.MaxInt16, cmd.MaxCapacity)
	}

	var el = edgelist.Random(cmd.Vertices, cmd.Density, cmd.MaxCapacity, cmd.Seed)
	if err := edgelist.WriteFile(cmd.fs, cmd.Args.Output, el); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"output":   cmd.Args.Output,
		"vertices": el.Vertices,
		"arcs":     len(el.Arcs),
		"seed":     cmd.Seed,
	}).Info("wrote random edge list")
	return nil
}
