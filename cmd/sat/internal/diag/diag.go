// Package diag renders a sat.ParseError as the two-line "source / caret"
// form a terminal user expects from a parser error, the way the original
// C++ ELog destructor printed the offending line with a caret under the
// failing column. This is CLI-only: the sat package itself never formats
// to a terminal, it only returns structured errors.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/rsms/sat"
	"github.com/rsms/sat/ascii"
)

// Render writes a human-readable rendering of err to w: the error
// message and position on the first line, the offending source line on
// the second, and a caret under the failing column on the third. If err
// is not a *sat.ParseError, it falls back to a plain one-line message.
// When color is true, the message and caret are themed using the
// teacher's ascii.DefaultTheme (previously only spent on ASM disassembly
// output; a parse error is the same kind of terminal diagnostic).
func Render(w io.Writer, err error, color bool) {
	pe, ok := err.(*sat.ParseError)
	if !ok {
		msg := fmt.Sprintf("error: %s", err)
		if color {
			msg = ascii.Color(ascii.DefaultTheme.Error, "%s", msg)
		}
		fmt.Fprintln(w, msg)
		return
	}

	head := pe.Error()
	if color {
		head = ascii.Color(ascii.DefaultTheme.Error, "%s", head)
	}
	fmt.Fprintln(w, head)
	if pe.Span.Text == "" {
		return
	}

	line := pe.Span.Text
	if color {
		line = ascii.Color(ascii.DefaultTheme.Muted, "%s", line)
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := pe.Pos.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	if color {
		caret = ascii.Color(ascii.DefaultTheme.Accent, "%s", caret)
	}
	fmt.Fprintf(w, "  %s\n", caret)
}
