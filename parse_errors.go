// parse_errors.go — the syntactic error taxonomy.
//
// Parse errors are accumulated, never thrown: the parser records one error
// per malformed statement and resynchronizes to the next statement boundary
// (see parser.go). Each error carries a discriminating kind plus the tokens
// needed for diagnostics, and 1-based line / 0-based column coordinates for
// caret-snippet rendering (errors.go).
package lasagne

import (
	"fmt"
	"strings"
)

// ParseErrorKind discriminates the failure cases the parser can report.
type ParseErrorKind int

const (
	// ExpectedToken: the stream was exhausted where a token was mandatory.
	ExpectedToken ParseErrorKind = iota
	// UnexpectedToken: a specific token (or one of a set) was required but a
	// different one was present. Found is nil when the stream ran out.
	UnexpectedToken
	// NoPrefixExpression: the leading token of an expression has no prefix
	// parse rule.
	NoPrefixExpression
	// NoInfixExpression: an infix continuation was attempted on a token with
	// no infix meaning.
	NoInfixExpression
	// ParseIntegerError: an integer literal failed 32-bit conversion.
	ParseIntegerError
	// NoPrefixPartner: a prefix operator appeared with nothing to bind to.
	NoPrefixPartner
	// NestingTooDeep: the expression exceeded the parser's nesting limit.
	NestingTooDeep
)

func (k ParseErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case NoPrefixExpression:
		return "NoPrefixExpression"
	case NoInfixExpression:
		return "NoInfixExpression"
	case ParseIntegerError:
		return "ParseIntegerError"
	case NoPrefixPartner:
		return "NoPrefixPartner"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "UnknownParseError"
	}
}

// ParseError is a single recoverable syntax error.
//
// Field validity by kind:
//   - UnexpectedToken: Expected (one or more acceptable kinds), Found
//     (nil when the stream was exhausted).
//   - NoPrefixExpression, NoInfixExpression, ParseIntegerError,
//     NoPrefixPartner: Token is the offending/operator token.
//   - ParseIntegerError: Cause holds the strconv failure.
type ParseError struct {
	Kind     ParseErrorKind
	Expected []TokenType
	Found    *Token
	Token    Token
	Cause    error

	Line int // 1-based; 0 when the position is unknown (stream exhausted)
	Col  int // 0-based
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ExpectedToken:
		return "expected a token, but the input ended"
	case UnexpectedToken:
		want := make([]string, len(e.Expected))
		for i, tt := range e.Expected {
			want[i] = tt.String()
		}
		if e.Found == nil {
			return fmt.Sprintf("expected %s, but the input ended", strings.Join(want, " or "))
		}
		return fmt.Sprintf("expected %s, found %s", strings.Join(want, " or "), e.Found)
	case NoPrefixExpression:
		return fmt.Sprintf("no expression can start with %s", e.Token)
	case NoInfixExpression:
		return fmt.Sprintf("%s is not an infix operator", e.Token)
	case ParseIntegerError:
		return fmt.Sprintf("cannot parse %q as a 32-bit integer: %v", e.Token.Lexeme, e.Cause)
	case NoPrefixPartner:
		return fmt.Sprintf("prefix operator %s has no operand", e.Token)
	case NestingTooDeep:
		return fmt.Sprintf("expression nesting exceeds %d levels", maxNesting)
	default:
		return "unknown parse error"
	}
}

// at stamps the error with a token position and returns it.
func (e *ParseError) at(t Token) *ParseError {
	e.Line = t.Line
	e.Col = t.Col
	return e
}

// ParseErrors is the ordered error list of one parse pass, usable as a
// single Go error by callers that treat any syntax error as fatal.
type ParseErrors []*ParseError

func (pe ParseErrors) Error() string {
	if len(pe) == 0 {
		return "no parse errors"
	}
	msgs := make([]string, len(pe))
	for i, e := range pe {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d parse error(s): %s", len(pe), strings.Join(msgs, "; "))
}

// IsIncomplete reports whether err describes source that ran out mid-
// construct rather than source that is malformed. The REPL uses this to
// keep prompting for continuation lines instead of rejecting the input.
func IsIncomplete(err error) bool {
	switch e := err.(type) {
	case *ParseError:
		switch e.Kind {
		case ExpectedToken, NoPrefixPartner:
			return true
		case UnexpectedToken:
			return e.Found == nil || e.Found.Type == EOF
		case NoPrefixExpression:
			return e.Token.Type == EOF
		}
		return false
	case ParseErrors:
		if len(e) == 0 {
			return false
		}
		// Only the trailing error may be a truncation artifact.
		return IsIncomplete(e[len(e)-1])
	default:
		return false
	}
}
