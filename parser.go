// parser.go — Pratt parser for lasagne with statement-boundary recovery.
//
// The parser consumes the token cursor (tokens.go) and builds the typed AST
// (ast.go). Two properties drive the design:
//
//   - Recovery: Parse never fails as a whole. Each malformed statement
//     contributes one *ParseError, the cursor resynchronizes past the next
//     '.', and parsing continues. Statements that did parse are kept.
//   - Precedence climbing: each infix token has a binding power (lbp). The
//     expression loop keeps pulling operands while the next token binds
//     strictly tighter than the level it was called at, which makes every
//     binary operator left-associative and nests mixed precedence correctly
//     ("a + b * c" parses as "(a + (b * c))").
//
// Grouping parentheses restart at Lowest, overriding the outer level. Block
// bodies (function literals, if/else branches) parse statements until the
// next token is '~' or 'else'; there is no counted brace matching.
package lasagne

import "strconv"

// Precedence is an infix binding power; higher binds tighter.
type Precedence int

const (
	Lowest Precedence = iota + 1
	Equality          // == !=
	LessGreater       // < >
	Sum               // + -
	Product           // * /
	Prefix            // !x -x
	Call              // f(x)
)

// lbp returns the binding power of a token used in infix position, and
// whether it has infix meaning at all.
func lbp(tt TokenType) (Precedence, bool) {
	switch tt {
	case EQ, NEQ:
		return Equality, true
	case LESS, GREATER:
		return LessGreater, true
	case PLUS, MINUS:
		return Sum, true
	case MULT, DIV:
		return Product, true
	}
	return 0, false
}

// infixOperator maps an infix token to its Operator.
func infixOperator(tt TokenType) (Operator, bool) {
	switch tt {
	case PLUS:
		return OpPlus, true
	case MINUS:
		return OpMinus, true
	case MULT:
		return OpMultiply, true
	case DIV:
		return OpDividedBy, true
	case LESS:
		return OpLessThan, true
	case GREATER:
		return OpGreaterThan, true
	case EQ:
		return OpEquals, true
	case NEQ:
		return OpNotEquals, true
	}
	return 0, false
}

// maxNesting bounds expression recursion so adversarial input turns into a
// parse error instead of native stack exhaustion.
const maxNesting = 512

// Parser owns one token cursor for the duration of one parse.
type Parser struct {
	tokens *Tokens
	depth  int
}

// NewParser creates a parser over the given cursor.
func NewParser(tokens *Tokens) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource scans and parses src. The error return is only ever a
// *LexError; syntax errors live in Program.Errors.
func ParseSource(src string) (*Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram(), nil
}

// Parse parses a complete program from the cursor.
func Parse(tokens *Tokens) *Program {
	return NewParser(tokens).ParseProgram()
}

// ParseProgram runs the top-level statement loop. On a statement failure it
// records the error, resynchronizes to the next statement boundary, and
// keeps going.
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for !p.tokens.AtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			p.tokens.SyncToNextStatement()
			program.Errors = append(program.Errors, err)
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program
}

// ─────────────────────────────── statements ────────────────────────────────

// parseStatement dispatches on the leading token: 'return' starts a return
// statement, an identifier directly followed by ':' starts an assign
// statement, anything else is an expression statement.
func (p *Parser) parseStatement() (Statement, *ParseError) {
	t, ok := p.tokens.Consume()
	if !ok {
		return nil, &ParseError{Kind: ExpectedToken}
	}
	switch {
	case t.Type == RETURN:
		return p.parseReturnStatement()
	case t.Type == IDENT && p.tokens.NextIs(ASSIGN):
		return p.parseAssignStatement(t)
	default:
		return p.parseExpressionStatement(t)
	}
}

func (p *Parser) parseAssignStatement(ident Token) (Statement, *ParseError) {
	if _, err := p.tokens.ExpectPeek(ASSIGN); err != nil {
		return nil, err
	}
	next, err := p.tokens.Expect()
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression(next, Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.ExpectPeek(PERIOD); err != nil {
		return nil, err
	}
	return &AssignStatement{Name: Identifier(ident.Lexeme), Value: value}, nil
}

func (p *Parser) parseReturnStatement() (Statement, *ParseError) {
	next, err := p.tokens.Expect()
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression(next, Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.ExpectPeek(PERIOD); err != nil {
		return nil, err
	}
	return &ReturnStatement{Value: value}, nil
}

func (p *Parser) parseExpressionStatement(current Token) (Statement, *ParseError) {
	expr, err := p.parseExpression(current, Lowest)
	if err != nil {
		return nil, err
	}
	// Trailing terminator is optional for expression statements.
	p.tokens.OptionalExpectPeek(PERIOD)
	return &ExpressionStatement{Expression: expr}, nil
}

// ─────────────────────────────── expressions ───────────────────────────────

// parseExpression is the Pratt core: a prefix production for the current
// token, then the infix climb. The strict '>' comparison against min is
// what yields left associativity at equal precedence.
func (p *Parser) parseExpression(current Token, min Precedence) (Expression, *ParseError) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNesting {
		return nil, (&ParseError{Kind: NestingTooDeep}).at(current)
	}

	left, err := p.parsePrefix(current)
	if err != nil {
		return nil, err
	}

	for {
		bp, has := p.tokens.NextHasInfix()
		if !has || bp <= min {
			break
		}
		op, perr := p.tokens.Expect()
		if perr != nil {
			return nil, perr
		}
		left, err = p.parseInfix(left, op)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefix(t Token) (Expression, *ParseError) {
	switch t.Type {
	case IDENT:
		return &IdentifierLiteral{Name: Identifier(t.Lexeme)}, nil
	case INT:
		n, err := strconv.ParseInt(t.Lexeme, 10, 32)
		if err != nil {
			return nil, (&ParseError{Kind: ParseIntegerError, Token: t, Cause: err}).at(t)
		}
		return IntegerLiteral(int32(n)), nil
	case TRUE:
		return BooleanLiteral(true), nil
	case FALSE:
		return BooleanLiteral(false), nil
	case BANG:
		return p.parsePrefixOperator(t, OpBang)
	case MINUS:
		return p.parsePrefixOperator(t, OpMinus)
	case LPAREN:
		return p.parseGroupedExpression()
	case IF:
		return p.parseIfExpression()
	case FUNCTION:
		return p.parseFunctionLiteral()
	default:
		return nil, (&ParseError{Kind: NoPrefixExpression, Token: t}).at(t)
	}
}

func (p *Parser) parsePrefixOperator(t Token, op Operator) (Expression, *ParseError) {
	operand, ok := p.tokens.Consume()
	if !ok {
		return nil, (&ParseError{Kind: NoPrefixPartner, Token: t}).at(t)
	}
	right, err := p.parseExpression(operand, Prefix)
	if err != nil {
		return nil, err
	}
	return &PrefixExpression{Operator: op, Right: right}, nil
}

func (p *Parser) parseInfix(left Expression, t Token) (Expression, *ParseError) {
	op, ok := infixOperator(t.Type)
	if !ok {
		return nil, (&ParseError{Kind: NoInfixExpression, Token: t}).at(t)
	}
	bp, _ := lbp(t.Type)
	next, err := p.tokens.Expect()
	if err != nil {
		return nil, err
	}
	right, perr := p.parseExpression(next, bp)
	if perr != nil {
		return nil, perr
	}
	return &InfixExpression{Left: left, Operator: op, Right: right}, nil
}

// parseGroupedExpression restarts at Lowest inside '(...)', overriding
// whatever level surrounds the group.
func (p *Parser) parseGroupedExpression() (Expression, *ParseError) {
	next, err := p.tokens.Expect()
	if err != nil {
		return nil, err
	}
	inner, perr := p.parseExpression(next, Lowest)
	if perr != nil {
		return nil, perr
	}
	if _, err := p.tokens.ExpectPeek(RPAREN); err != nil {
		return nil, err
	}
	return inner, nil
}

// parseIfExpression parses `if cond: consequence ~` with an optional
// `else: alternative` before the closing '~'.
func (p *Parser) parseIfExpression() (Expression, *ParseError) {
	next, err := p.tokens.Expect()
	if err != nil {
		return nil, err
	}
	condition, perr := p.parseExpression(next, Lowest)
	if perr != nil {
		return nil, perr
	}
	if _, err := p.tokens.ExpectPeek(ASSIGN); err != nil {
		return nil, err
	}
	consequence, perr := p.parseBlockStatement()
	if perr != nil {
		return nil, perr
	}

	expr := &IfExpression{Condition: condition, Consequence: consequence}

	t, ok := p.tokens.Consume()
	if !ok {
		return nil, &ParseError{Kind: ExpectedToken}
	}
	switch t.Type {
	case TILDE:
		return expr, nil
	case ELSE:
		if _, err := p.tokens.ExpectPeek(ASSIGN); err != nil {
			return nil, err
		}
		alternative, perr := p.parseBlockStatement()
		if perr != nil {
			return nil, perr
		}
		if _, err := p.tokens.ExpectPeek(TILDE); err != nil {
			return nil, err
		}
		expr.Alternative = alternative
		return expr, nil
	default:
		found := t
		return nil, (&ParseError{
			Kind:     UnexpectedToken,
			Expected: []TokenType{TILDE, ELSE},
			Found:    &found,
		}).at(t)
	}
}

// parseFunctionLiteral parses `fn(a, b): body ~`.
func (p *Parser) parseFunctionLiteral() (Expression, *ParseError) {
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.ExpectPeek(ASSIGN); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.tokens.ExpectPeek(TILDE); err != nil {
		return nil, err
	}
	return &FunctionLiteral{Parameters: params, Body: body}, nil
}

func (p *Parser) parseFunctionParameters() ([]Identifier, *ParseError) {
	params := []Identifier{}
	for {
		t, ok := p.tokens.Consume()
		if !ok {
			return params, nil
		}
		switch t.Type {
		case LPAREN, COMMA:
			if p.tokens.NextIs(RPAREN) {
				p.tokens.Consume()
				return params, nil
			}
			if p.tokens.AtEnd() {
				return nil, &ParseError{Kind: ExpectedToken}
			}
			name, err := p.parseParameterName()
			if err != nil {
				return nil, err
			}
			params = append(params, name)
		case RPAREN:
			return params, nil
		default:
			found := t
			return nil, (&ParseError{
				Kind:     UnexpectedToken,
				Expected: []TokenType{COMMA, RPAREN},
				Found:    &found,
			}).at(t)
		}
	}
}

func (p *Parser) parseParameterName() (Identifier, *ParseError) {
	t, ok := p.tokens.Consume()
	if !ok {
		return "", &ParseError{Kind: ExpectedToken}
	}
	if t.Type != IDENT {
		found := t
		return "", (&ParseError{
			Kind:     UnexpectedToken,
			Expected: []TokenType{IDENT},
			Found:    &found,
		}).at(t)
	}
	return Identifier(t.Lexeme), nil
}

// parseBlockStatement consumes statements until the next token is the block
// terminator or 'else'; the caller consumes the delimiter itself.
func (p *Parser) parseBlockStatement() (*BlockStatement, *ParseError) {
	block := &BlockStatement{}
	for !p.tokens.NextIs(TILDE) && !p.tokens.NextIs(ELSE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}
