// Package diag implements diagnostic collection shared by the scanner,
// parser and resolver stages. It plays the same role as the teacher's
// re-export of go/scanner.ErrorList: a sortable list of positioned messages
// that is itself an error.
package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// An Error is a single compile-time diagnostic.
type Error struct {
	Line int
	// Loc is " at end", " at 'LEX'", or empty (scanner diagnostics carry no
	// location suffix), matching spec.md's diagnostic format.
	Loc string
	Msg string
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Loc, e.Msg)
}

// AtEnd returns the " at end" location suffix used for an error anchored at
// the EOF token.
func AtEnd() string { return " at end" }

// AtLexeme returns the " at 'LEX'" location suffix used for an error
// anchored at a specific token.
func AtLexeme(lexeme string) string { return fmt.Sprintf(" at '%s'", lexeme) }

// List collects diagnostics from a single compile stage. Len, Sort, Err and
// All treat a nil *List as empty; Add and Error need a non-nil receiver. It
// is used as an error only once it holds at least one Error. It satisfies
// the error interface so a stage can return it directly.
type List struct {
	errs []Error
}

// Add appends a new diagnostic to the list.
func (l *List) Add(line int, loc, msg string) {
	l.errs = append(l.errs, Error{Line: line, Loc: loc, Msg: msg})
}

// Len reports the number of collected diagnostics.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.errs)
}

// Sort orders the diagnostics by line, then by insertion order within a
// line (a stable sort, since panic-mode recovery and resolver traversal can
// produce several errors on the same line in a meaningful order).
func (l *List) Sort() {
	if l == nil {
		return
	}
	sort.SliceStable(l.errs, func(i, j int) bool { return l.errs[i].Line < l.errs[j].Line })
}

// Err returns l as an error if it holds at least one diagnostic, or nil
// otherwise. This is the idiom every stage uses to decide whether to
// short-circuit the pipeline.
func (l *List) Err() error {
	if l.Len() == 0 {
		return nil
	}
	return l
}

// Error implements the error interface, joining every diagnostic on its own
// line.
func (l *List) Error() string {
	var sb strings.Builder
	for i, e := range l.errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// All returns the collected diagnostics in their current order.
func (l *List) All() []Error {
	if l == nil {
		return nil
	}
	return l.errs
}

// Print writes every diagnostic in err (which must be nil or a *List) to w,
// one per line. It is a no-op if err is nil.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	l, ok := err.(*List)
	if !ok {
		fmt.Fprintln(w, err)
		return
	}
	for _, e := range l.errs {
		fmt.Fprintln(w, e.Error())
	}
}
