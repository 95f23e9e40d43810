package sat

import (
	"fmt"
	"io"
	"strings"
)

// Print renders e using the tree grammar from spec §6, writing to w.
// Grounded on _examples/original_source/src/expr.cc's _repr/_repr_each
// recursion; ported from std::ostream manipulators to an io.Writer
// walk in the style of the teacher's tree_printer.go Pretty walk.
func (e *Expr) Print(w io.Writer) error {
	_, err := printExpr(w, e, 0, true, true, -1)
	return err
}

// String renders e using the tree grammar from spec §6.
func (e *Expr) String() string {
	var sb strings.Builder
	_ = e.Print(&sb)
	return sb.String()
}

// printExpr mirrors expr.cc's _repr: parentType is -1 for "no parent"
// (the root call), otherwise one of LIST/BLOCK/INLINE_BLOCK/GROUP.
func printExpr(w io.Writer, e *Expr, indentLevel int, isFirst, isLast bool, parentType Type) (bool, error) {
	switch e.Type {
	case BLOCK:
		return printEach(w, e.head, indentLevel+1, e.Type)

	case INLINE_BLOCK:
		if !isFirst {
			if _, err := io.WriteString(w, " "); err != nil {
				return false, err
			}
		}
		if _, err := io.WriteString(w, "{ "); err != nil {
			return false, err
		}
		if _, err := printEach(w, e.head, indentLevel, e.Type); err != nil {
			return false, err
		}
		_, err := io.WriteString(w, " }")
		return err == nil, err

	case LIST:
		switch {
		case parentType == INLINE_BLOCK:
			if !isFirst {
				if _, err := io.WriteString(w, "; "); err != nil {
					return false, err
				}
			}
		case (indentLevel > 0 || !isFirst) && parentType != GROUP:
			if _, err := fmt.Fprintf(w, "\n%s", strings.Repeat(" ", indentLevel*2)); err != nil {
				return false, err
			}
		}
		return printEach(w, e.head, indentLevel, parentType)

	case GROUP:
		if !isFirst {
			if _, err := io.WriteString(w, " "); err != nil {
				return false, err
			}
		}
		if _, err := io.WriteString(w, "("); err != nil {
			return false, err
		}
		if _, err := printEach(w, e.head, indentLevel, e.Type); err != nil {
			return false, err
		}
		_, err := io.WriteString(w, ")")
		return err == nil, err

	case COMMENT:
		if !isFirst {
			if _, err := io.WriteString(w, " "); err != nil {
				return false, err
			}
		}
		_, err := fmt.Fprintf(w, "#%s", e.str.CStr())
		return err == nil, err

	case SYM, ATOM:
		if !isFirst {
			if _, err := io.WriteString(w, " "); err != nil {
				return false, err
			}
		}
		_, err := io.WriteString(w, e.str.CStr())
		return err == nil, err

	case ASSIGNMENT:
		if !isFirst {
			if _, err := io.WriteString(w, " "); err != nil {
				return false, err
			}
		}
		_, err := fmt.Fprintf(w, "%s:", e.str.CStr())
		return err == nil, err

	default:
		// spec §9 Open Question (b): diagnostic-only marker for a tag
		// the tree grammar doesn't define. Never reached by the
		// tokenizer today.
		if !isFirst {
			if _, err := io.WriteString(w, " "); err != nil {
				return false, err
			}
		}
		if _, err := fmt.Fprintf(w, "#!%s", e.Type); err != nil {
			return false, err
		}
		if !isLast {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return false, err
			}
		}
		return true, nil
	}
}

func printEach(w io.Writer, head *Expr, indentLevel int, parentType Type) (bool, error) {
	for i, child := 0, head; child != nil; i, child = i+1, child.Next {
		if _, err := printExpr(w, child, indentLevel, i == 0, child.Next == nil, parentType); err != nil {
			return false, err
		}
	}
	return true, nil
}
