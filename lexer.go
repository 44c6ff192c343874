// lexer.go — byte-level scanner for lasagne source text.
//
// The surface syntax is small: identifiers, integer literals, a handful of
// keywords, single-character punctuation, and the two-character comparison
// operators. Statements are terminated by '.', assignment is written with
// ':', and '~' closes a block (function bodies and if/else branches).
//
// The scanner produces the full token slice up front; the parser walks it
// through the Tokens cursor (tokens.go). Every token carries its 1-based
// line and 0-based column so diagnostics can render caret snippets
// (errors.go).
package lasagne

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LPAREN // "("
	RPAREN // ")"
	COMMA  // ","
	ASSIGN // ":" binds a name or opens a block body
	PERIOD // "." statement terminator
	TILDE  // "~" block terminator

	// Operators
	BANG    // "!"
	MINUS   // "-"
	PLUS    // "+"
	MULT    // "*"
	DIV     // "/"
	LESS    // "<"
	GREATER // ">"
	EQ      // "=="
	NEQ     // "!="

	// Literals & identifiers
	IDENT
	INT

	// Keywords
	TRUE
	FALSE
	RETURN
	IF
	ELSE
	FUNCTION // "fn"
)

// String renders the token kind the way it is spelled in source, for use in
// "expected X, found Y" diagnostics.
func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return "illegal token"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case COMMA:
		return "','"
	case ASSIGN:
		return "':'"
	case PERIOD:
		return "'.'"
	case TILDE:
		return "'~'"
	case BANG:
		return "'!'"
	case MINUS:
		return "'-'"
	case PLUS:
		return "'+'"
	case MULT:
		return "'*'"
	case DIV:
		return "'/'"
	case LESS:
		return "'<'"
	case GREATER:
		return "'>'"
	case EQ:
		return "'=='"
	case NEQ:
		return "'!='"
	case IDENT:
		return "identifier"
	case INT:
		return "integer"
	case TRUE:
		return "'true'"
	case FALSE:
		return "'false'"
	case RETURN:
		return "'return'"
	case IF:
		return "'if'"
	case ELSE:
		return "'else'"
	case FUNCTION:
		return "'fn'"
	default:
		return "unknown token"
	}
}

// Token is a lexical token. Lexeme is the raw source slice; integer literals
// keep their text and are converted by the parser so that out-of-range
// values surface as parse errors rather than lexer faults.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int // 1-based
	Col    int // 0-based column of the first byte
}

func (t Token) String() string {
	switch t.Type {
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case INT:
		return fmt.Sprintf("integer %s", t.Lexeme)
	case EOF:
		return "end of input"
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

// keywords map
var keywords = map[string]TokenType{
	"true":   TRUE,
	"false":  FALSE,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"fn":     FUNCTION,
}

// Lexer scans a lasagne source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

// Scan tokenizes the whole source, appending a final EOF token. The first
// unrecognized character aborts the scan with a *LexError.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			break
		}
		l.tokStartLine = l.line
		l.tokStartCol = l.col

		ch, _ := l.advance()
		switch {
		case ch == '(':
			l.addToken(LPAREN)
		case ch == ')':
			l.addToken(RPAREN)
		case ch == ',':
			l.addToken(COMMA)
		case ch == ':':
			l.addToken(ASSIGN)
		case ch == '.':
			l.addToken(PERIOD)
		case ch == '~':
			l.addToken(TILDE)
		case ch == '+':
			l.addToken(PLUS)
		case ch == '-':
			l.addToken(MINUS)
		case ch == '*':
			l.addToken(MULT)
		case ch == '/':
			l.addToken(DIV)
		case ch == '<':
			l.addToken(LESS)
		case ch == '>':
			l.addToken(GREATER)
		case ch == '!':
			if l.matchByte('=') {
				l.addToken(NEQ)
			} else {
				l.addToken(BANG)
			}
		case ch == '=':
			if l.matchByte('=') {
				l.addToken(EQ)
			} else {
				return nil, l.err("unexpected character '=' (did you mean '==' or ':'?)")
			}
		case isDigit(ch):
			l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
		default:
			return nil, l.err(fmt.Sprintf("unexpected character %q", ch))
		}
	}

	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.addToken(EOF)
	return l.tokens, nil
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) matchByte(want byte) bool {
	if ch, ok := l.peek(); ok && ch == want {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) addToken(tt TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	})
	l.start = l.cur
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func (l *Lexer) scanNumber() {
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}
	l.addToken(INT)
}

func (l *Lexer) scanIdentifier() {
	for {
		ch, ok := l.peek()
		if !ok || !isAlphaNum(ch) {
			break
		}
		l.advance()
	}
	if tt, ok := keywords[l.src[l.start:l.cur]]; ok {
		l.addToken(tt)
		return
	}
	l.addToken(IDENT)
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// ----- errors -----

// LexError reports the first unrecognized character. Line is 1-based, Col
// is the 0-based column of the offending byte.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}
