package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/maxflow/report"
)

// prompter asks for values the user did not pass as flags.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// vertex prompts with |label| and reads one integer.
func (p *prompter) vertex(label string) (int, error) {
	fmt.Fprintf(p.out, "Enter %s vertex: ", label)

	var v int
	if _, err := fmt.Fscan(p.in, &v); err != nil {
		return 0, errors.Wrapf(err, "reading %s vertex", label)
	}
	return v, nil
}

// order shows the output menu and reads the choice.
func (p *prompter) order() (report.Order, error) {
	fmt.Fprint(p.out, "Choose output option:\n"+
		"1 - First to last vertex order\n"+
		"2 - Source to sink vertex order\n"+
		"Your choice: ")

	var choice string
	if _, err := fmt.Fscan(p.in, &choice); err != nil {
		return 0, errors.Wrap(err, "reading output option")
	}
	return report.ParseOrder(choice)
}
