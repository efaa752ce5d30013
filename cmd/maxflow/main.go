package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"

	mbp "github.com/katalvlaran/maxflow/mainboilerplate"
	"github.com/katalvlaran/maxflow/metrics"
)

const iniFilename = "maxflow.ini"

// Config is the top-level configuration shared by all sub-commands.
var Config = new(struct {
	Log     mbp.LogConfig     `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Metrics mbp.MetricsConfig `group:"Metrics" namespace:"metrics" env-namespace:"METRICS"`
})

func main() {
	prometheus.MustRegister(metrics.Collectors()...)

	var parser = flags.NewParser(Config, flags.Default)
	parser.LongDescription = `maxflow computes the maximum flow between a source and a sink of a
directed capacitated network stored in the binary edge-list format, using the
Edmonds–Karp algorithm.

Optionally configure maxflow with a '` + iniFilename + `' file in the current working
directory, or with '~/.config/maxflow/` + iniFilename + `'. Use the 'print-config'
sub-command to inspect the tool's current configuration.
`
	mbp.AddPrintConfigCmd(parser, iniFilename)
	_ = mustAddCmd(parser.Command, "solve", "Compute the maximum flow of an edge-list file", `
Read a binary edge list, compute the maximum flow from --source to --sink and
write a report listing every arc that carries flow.

Source, sink and output order may be given as flags. Any that are omitted are
prompted for on standard input.
`, &cmdSolve{})
	_ = mustAddCmd(parser.Command, "generate", "Write a random edge-list file", `
Write a deterministic random network in the binary edge-list format, for
trying the solver or benchmarking it on larger inputs.
`, &cmdGenerate{})

	mbp.MustParseConfig(parser, iniFilename)
}

func mustAddCmd(cmd *flags.Command, name, short, long string, cfg interface{}) *flags.Command {
	cmd, err := cmd.AddCommand(name, short, long, cfg)
	mbp.Must(err, "failed to add command", "name", name)
	return cmd
}
