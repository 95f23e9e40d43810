package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rsms/sat"
	"github.com/rsms/sat/cmd/sat/internal/diag"
)

// ParseCmd parses a file, or stdin when Path is omitted, and prints each
// completed top-level expression's canonical form to stdout.
type ParseCmd struct {
	Path          string `arg:"" optional:"" help:"File to parse; reads stdin if omitted."`
	RootNamespace string `help:"Name of the namespace installed at the root scope." default:"user"`
}

func (c *ParseCmd) Run() error {
	r := os.Stdin
	if c.Path != "" {
		f, err := os.Open(c.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	} else if isatty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("refusing to read from a terminal; pass a file or pipe input")
	}

	p := sat.New(sat.WithRootNamespace(c.RootNamespace))
	if err := runParse(r, p, os.Stdout); err != nil {
		diag.Render(os.Stderr, err, isatty.IsTerminal(os.Stderr.Fd()))
		return err
	}
	return nil
}
