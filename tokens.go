// tokens.go — forward-only cursor over a scanned token slice.
//
// The parser never touches the raw slice; it goes through this cursor,
// which provides lookahead-1 peek, consume, the two expect flavors, and the
// statement-boundary resynchronization used by error recovery. The trailing
// EOF token emitted by the lexer is treated as end-of-stream and is never
// handed out.
package lasagne

// Tokens is an exclusive cursor over one token slice. It is not safe for
// concurrent use; each parse owns its own cursor.
type Tokens struct {
	toks []Token
	i    int
}

// NewTokens wraps a scanned slice. Lex accepts raw source instead.
func NewTokens(toks []Token) *Tokens {
	return &Tokens{toks: toks}
}

// Lex scans src and returns a cursor over its tokens.
func Lex(src string) (*Tokens, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	return NewTokens(toks), nil
}

// AtEnd reports whether the stream is exhausted.
func (ts *Tokens) AtEnd() bool {
	_, ok := ts.Peek()
	return !ok
}

// Peek returns the next token without consuming it.
func (ts *Tokens) Peek() (Token, bool) {
	if ts.i >= len(ts.toks) || ts.toks[ts.i].Type == EOF {
		return Token{}, false
	}
	return ts.toks[ts.i], true
}

// Consume returns the next token and advances past it.
func (ts *Tokens) Consume() (Token, bool) {
	t, ok := ts.Peek()
	if !ok {
		return Token{}, false
	}
	ts.i++
	return t, true
}

// Expect consumes the next token, failing with ExpectedToken when the
// stream is exhausted.
func (ts *Tokens) Expect() (Token, *ParseError) {
	t, ok := ts.Consume()
	if !ok {
		return Token{}, &ParseError{Kind: ExpectedToken}
	}
	return t, nil
}

// ExpectPeek consumes the next token iff it has the wanted kind, failing
// with UnexpectedToken otherwise. The cursor does not advance on failure.
func (ts *Tokens) ExpectPeek(want TokenType) (Token, *ParseError) {
	t, ok := ts.Peek()
	if !ok {
		return Token{}, &ParseError{Kind: UnexpectedToken, Expected: []TokenType{want}}
	}
	if t.Type != want {
		found := t
		return Token{}, (&ParseError{Kind: UnexpectedToken, Expected: []TokenType{want}, Found: &found}).at(t)
	}
	ts.i++
	return t, nil
}

// OptionalExpectPeek consumes the next token when it matches and reports
// whether it did. Expression statements use this for the optional '.'.
func (ts *Tokens) OptionalExpectPeek(want TokenType) bool {
	if t, ok := ts.Peek(); ok && t.Type == want {
		ts.i++
		return true
	}
	return false
}

// NextIs reports whether the next token has the given kind.
func (ts *Tokens) NextIs(tt TokenType) bool {
	t, ok := ts.Peek()
	return ok && t.Type == tt
}

// NextHasInfix reports whether the next token carries infix meaning, and
// its binding power when it does.
func (ts *Tokens) NextHasInfix() (Precedence, bool) {
	t, ok := ts.Peek()
	if !ok {
		return 0, false
	}
	return lbp(t.Type)
}

// SyncToNextStatement discards tokens through the next statement terminator
// (or to the end of the stream). Invoked only by the top-level statement
// loop after a parse error; a single malformed statement therefore never
// blocks the statements after it.
func (ts *Tokens) SyncToNextStatement() {
	for {
		t, ok := ts.Consume()
		if !ok || t.Type == PERIOD {
			return
		}
	}
}
