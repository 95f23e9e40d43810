package main

import (
	"bytes"
	"os"

	"github.com/google/renameio"
	"github.com/mattn/go-isatty"
	"github.com/rsms/sat"
	"github.com/rsms/sat/cmd/sat/internal/diag"
)

// FmtCmd rewrites a file to its canonical printed form: parse, then
// print every top-level result back out, separated by blank lines.
// Writes are atomic via renameio.WriteFile, the same pattern jcorbin-soc
// uses for its own durable store writes, so a crash or interrupt mid-fmt
// never leaves a half-written file behind.
type FmtCmd struct {
	Path          string `arg:"" help:"File to reformat in place."`
	RootNamespace string `help:"Name of the namespace installed at the root scope." default:"user"`
}

func (c *FmtCmd) Run() error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	p := sat.New(sat.WithRootNamespace(c.RootNamespace))
	first := true
	parseErr := runParse(f, p, writerFunc(func(line []byte) {
		if !first {
			out.WriteString("\n")
		}
		first = false
		out.Write(line)
		out.WriteString("\n")
	}))
	f.Close()
	if parseErr != nil {
		diag.Render(os.Stderr, parseErr, isatty.IsTerminal(os.Stderr.Fd()))
		return parseErr
	}

	info, err := os.Stat(c.Path)
	if err != nil {
		return err
	}
	return renameio.WriteFile(c.Path, out.Bytes(), info.Mode().Perm())
}

// writerFunc adapts a per-line callback to an io.Writer, matching the
// single fmt.Fprintln(out, ...) call sites in runParse expect.
type writerFunc func(line []byte)

func (f writerFunc) Write(p []byte) (int, error) {
	f(bytes.TrimRight(p, "\n"))
	return len(p), nil
}
