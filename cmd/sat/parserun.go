package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rsms/sat"
)

// runParse drives a fresh sat.Parser over r, writing every completed
// top-level expression's pretty-printed form to out, one per line. It
// mirrors sat.cc's main() fill/parse/drain loop: AcquireBuffer supplies
// the write target, Read fills it, Commit makes the bytes visible, and
// Step/NextResult drain whatever that made parseable.
func runParse(r io.Reader, p *sat.Parser, out io.Writer) error {
	for {
		buf, _ := p.AcquireBuffer()
		n, readErr := r.Read(buf)
		endOfInput := errors.Is(readErr, io.EOF)
		if readErr != nil && !endOfInput {
			return fmt.Errorf("read: %w", readErr)
		}
		p.Commit(n, endOfInput)

		for {
			switch p.Step() {
			case sat.StatusError:
				return p.Err()
			case sat.StatusResult:
				for {
					e, ok := p.NextResult()
					if !ok {
						break
					}
					fmt.Fprintln(out, e.String())
				}
			case sat.StatusMore:
				goto nextRead
			case sat.StatusDone:
				return nil
			}
		}
	nextRead:
	}
}
