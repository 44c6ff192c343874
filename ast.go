// ast.go — the syntax tree produced by the parser.
//
// Nodes are plain data, built bottom-up and never mutated afterwards. The
// statement and expression kinds are closed sets: the evaluator and the
// renderer switch over them exhaustively, and a new variant is a compile
// surface change, not a runtime surprise.
//
// Every node renders to a canonical, fully parenthesized form via String().
// The rendering is a pure function of tree shape — independent of source
// formatting — and is what the tests assert precedence and associativity
// against: parsing "a + b * c" renders as "(a + (b * c))".
package lasagne

import (
	"strconv"
	"strings"
)

// Identifier is a plain name; equality is value equality.
type Identifier string

// Operator is the closed set of infix/prefix operators.
type Operator int

const (
	OpPlus Operator = iota
	OpMinus
	OpMultiply
	OpDividedBy
	OpLessThan
	OpGreaterThan
	OpEquals
	OpNotEquals
	OpBang // prefix-only
)

func (op Operator) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "*"
	case OpDividedBy:
		return "/"
	case OpLessThan:
		return "<"
	case OpGreaterThan:
		return ">"
	case OpEquals:
		return "=="
	case OpNotEquals:
		return "!="
	case OpBang:
		return "!"
	default:
		return "?"
	}
}

// Program is the root of a parse: the statements that parsed, in order, and
// the errors that were recovered from, in order. Error recovery never
// discards a successfully parsed statement, so both lists keep their
// original relative order.
type Program struct {
	Statements []Statement
	Errors     ParseErrors
}

// Valid reports whether the parse produced no errors.
func (p *Program) Valid() bool { return len(p.Errors) == 0 }

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}

// Statement is the closed statement sum:
// expression, assign, or return.
type Statement interface {
	stmtNode()
	String() string
}

// ExpressionStatement wraps a bare expression used in statement position.
type ExpressionStatement struct {
	Expression Expression
}

// AssignStatement binds a name: `x: 5.`
type AssignStatement struct {
	Name  Identifier
	Value Expression
}

// ReturnStatement returns a value from a block: `return x.`
type ReturnStatement struct {
	Value Expression
}

// BlockStatement is the ordered body of a function literal or an if/else
// branch. It is delimited by the surrounding construct ('~' or 'else'), not
// by counted braces.
type BlockStatement struct {
	Statements []Statement
}

func (s *ExpressionStatement) stmtNode() {}
func (s *AssignStatement) stmtNode()     {}
func (s *ReturnStatement) stmtNode()     {}

func (s *ExpressionStatement) String() string { return s.Expression.String() }
func (s *AssignStatement) String() string {
	return string(s.Name) + ": " + s.Value.String() + "."
}
func (s *ReturnStatement) String() string { return "return " + s.Value.String() + "." }

func (b *BlockStatement) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Expression is the closed expression sum.
type Expression interface {
	exprNode()
	String() string
}

// IntegerLiteral is a 32-bit signed integer literal.
type IntegerLiteral int32

// BooleanLiteral is `true` or `false`.
type BooleanLiteral bool

// IdentifierLiteral is a name used in expression position.
type IdentifierLiteral struct {
	Name Identifier
}

// PrefixExpression applies a prefix operator (Bang or Minus).
type PrefixExpression struct {
	Operator Operator
	Right    Expression
}

// InfixExpression applies a binary operator; all are left-associative.
type InfixExpression struct {
	Left     Expression
	Operator Operator
	Right    Expression
}

// IfExpression is a conditional; Alternative is nil when no else branch was
// written.
type IfExpression struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

// FunctionLiteral is an anonymous function: `fn(a, b): body ~`.
type FunctionLiteral struct {
	Parameters []Identifier
	Body       *BlockStatement
}

// CallExpression applies a callee to arguments. The node exists so the
// expression set is complete; current grammar productions never build it.
type CallExpression struct {
	Function  Expression
	Arguments []Expression
}

func (e IntegerLiteral) exprNode()      {}
func (e BooleanLiteral) exprNode()      {}
func (e *IdentifierLiteral) exprNode()  {}
func (e *PrefixExpression) exprNode()   {}
func (e *InfixExpression) exprNode()    {}
func (e *IfExpression) exprNode()       {}
func (e *FunctionLiteral) exprNode()    {}
func (e *CallExpression) exprNode()     {}

func (e IntegerLiteral) String() string { return strconv.FormatInt(int64(e), 10) }

func (e BooleanLiteral) String() string {
	if e {
		return "true"
	}
	return "false"
}

func (e *IdentifierLiteral) String() string { return string(e.Name) }

func (e *PrefixExpression) String() string {
	return "(" + e.Operator.String() + e.Right.String() + ")"
}

func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator.String() + " " + e.Right.String() + ")"
}

func (e *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(e.Condition.String())
	b.WriteString(": ")
	b.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		b.WriteString(" else: ")
		b.WriteString(e.Alternative.String())
	}
	b.WriteString(" ~")
	return b.String()
}

func (e *FunctionLiteral) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = string(p)
	}
	return "fn(" + strings.Join(params, ", ") + "): " + e.Body.String() + " ~"
}

func (e *CallExpression) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return e.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
