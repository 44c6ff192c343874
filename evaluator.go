// evaluator.go — tree-walking evaluation.
//
// The evaluator reduces a parsed Program to a single Value, or stops at the
// first *EvalError. Statements evaluate in order and the last statement's
// value is the program's value.
//
// Dispatch is eager and strictly left-to-right: infix operands are both
// evaluated before the operator is applied, so there is no short-circuit
// form. Integer arithmetic is two's-complement int32 and wraps on overflow;
// integer division truncates and a zero divisor is a DivisionByZero error.
//
// Several constructs parse but do not evaluate yet — assign and return
// statements, identifier lookup, if expressions, function literals, and
// calls all return an Unsupported error naming the construct. Their
// semantics are future work; the evaluator refuses to guess them. The env
// parameter is threaded through evaluation so those semantics can land
// without changing any signature, but no current path reads it.
package lasagne

// Eval scans, parses, and evaluates source in the given environment. The
// outcome is three-way and the error type tells the phases apart:
//
//   - *LexError     — the source did not tokenize,
//   - ParseErrors   — the source did not parse (all recovered errors, in order),
//   - *EvalError    — the program failed at runtime,
//
// otherwise the program's Value is returned. The caller decides whether any
// parse error is fatal; Eval itself refuses to run an invalid program.
func Eval(src string, env *Env) (Value, error) {
	program, err := ParseSource(src)
	if err != nil {
		return Value{}, err
	}
	if !program.Valid() {
		return Value{}, program.Errors
	}
	v, everr := EvalProgram(program, env)
	if everr != nil {
		return Value{}, everr
	}
	return v, nil
}

// EvalProgram evaluates each statement in order and returns the value of
// the last one. An empty program fails with EmptyProgram.
func EvalProgram(program *Program, env *Env) (Value, *EvalError) {
	if len(program.Statements) == 0 {
		return Value{}, &EvalError{Kind: EmptyProgram}
	}
	var v Value
	for _, stmt := range program.Statements {
		var err *EvalError
		v, err = evalStatement(stmt, env)
		if err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

func evalStatement(stmt Statement, env *Env) (Value, *EvalError) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		return evalExpression(s.Expression, env)
	case *AssignStatement:
		return Value{}, unsupported("assign statement")
	case *ReturnStatement:
		return Value{}, unsupported("return statement")
	default:
		return Value{}, unsupported("statement")
	}
}

func evalExpression(expr Expression, env *Env) (Value, *EvalError) {
	switch e := expr.(type) {
	case IntegerLiteral:
		return Int(int32(e)), nil
	case BooleanLiteral:
		return Bool(bool(e)), nil
	case *IdentifierLiteral:
		return Value{}, unsupported("identifier")
	case *PrefixExpression:
		return evalPrefixExpression(e, env)
	case *InfixExpression:
		return evalInfixExpression(e, env)
	case *IfExpression:
		return Value{}, unsupported("if expression")
	case *FunctionLiteral:
		return Value{}, unsupported("function literal")
	case *CallExpression:
		return Value{}, unsupported("call expression")
	default:
		return Value{}, unsupported("expression")
	}
}

func evalPrefixExpression(e *PrefixExpression, env *Env) (Value, *EvalError) {
	right, err := evalExpression(e.Right, env)
	if err != nil {
		return Value{}, err
	}
	switch e.Operator {
	case OpBang:
		if right.Tag != VTBoolean {
			return Value{}, &EvalError{Kind: IncorrectPrefixOperand, Operator: OpBang, Operand: &right}
		}
		return Bool(!right.AsBool()), nil
	case OpMinus:
		if right.Tag != VTInteger {
			return Value{}, &EvalError{Kind: IncorrectPrefixOperand, Operator: OpMinus, Operand: &right}
		}
		return Int(-right.AsInt()), nil
	default:
		return Value{}, &EvalError{Kind: IncorrectPrefixOperand, Operator: e.Operator, Operand: &right}
	}
}

func evalInfixExpression(e *InfixExpression, env *Env) (Value, *EvalError) {
	left, err := evalExpression(e.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := evalExpression(e.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch {
	case left.Tag == VTInteger && right.Tag == VTInteger:
		return evalIntegerInfix(e.Operator, left, right)
	case left.Tag == VTBoolean && right.Tag == VTBoolean:
		return evalBooleanInfix(e.Operator, left, right)
	default:
		return Value{}, &EvalError{Kind: InfixTypeMismatch, Operator: e.Operator, Left: &left, Right: &right}
	}
}

func evalIntegerInfix(op Operator, left, right Value) (Value, *EvalError) {
	l, r := left.AsInt(), right.AsInt()
	switch op {
	case OpPlus:
		return Int(l + r), nil
	case OpMinus:
		return Int(l - r), nil
	case OpMultiply:
		return Int(l * r), nil
	case OpDividedBy:
		if r == 0 {
			return Value{}, &EvalError{Kind: DivisionByZero, Operator: op, Left: &left, Right: &right}
		}
		return Int(l / r), nil
	case OpLessThan:
		return Bool(l < r), nil
	case OpGreaterThan:
		return Bool(l > r), nil
	case OpEquals:
		return Bool(l == r), nil
	case OpNotEquals:
		return Bool(l != r), nil
	default:
		return Value{}, &EvalError{Kind: IntegerInfixOperator, Operator: op}
	}
}

func evalBooleanInfix(op Operator, left, right Value) (Value, *EvalError) {
	l, r := left.AsBool(), right.AsBool()
	switch op {
	case OpEquals:
		return Bool(l == r), nil
	case OpNotEquals:
		return Bool(l != r), nil
	default:
		return Value{}, &EvalError{Kind: BooleanInfixOperator, Operator: op}
	}
}
