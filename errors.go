// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// This module turns lexer/parser diagnostics into readable snippets with a
// caret pointing at the offending column:
//
//	PARSE ERROR at 3:12: expected ')', found '.'
//
//	   2 | x: (1 + 2
//	   3 |          .
//	       |        ^
//	   4 | y: 3.
//
// The snippet shows up to one line of context before and after, numbers the
// lines, and places the caret under the 1-based column. WrapErrorWithSource
// recognizes *LexError, *ParseError, and ParseErrors (one snippet per
// recovered error); any other error — including *EvalError, which carries
// no source position — is returned unchanged.
package lasagne

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. Errors it does not recognize pass
// through untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name in the header
// ("PARSE ERROR in <name> at ...").
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Lexer Col is 0-based; render as 1-based.
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Error()))
	case ParseErrors:
		parts := make([]string, len(e))
		for i, pe := range e {
			parts[i] = snippet(src, "PARSE ERROR", srcName, pe.Line, pe.Col+1, pe.Error())
		}
		return fmt.Errorf("%s", strings.Join(parts, "\n"))
	default:
		return err
	}
}

// snippet builds the caret-annotated block. Coordinates are treated as
// 1-based and clamped to the source bounds, so out-of-range positions
// (e.g. errors reported at end of input) still render safely.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
