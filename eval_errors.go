// eval_errors.go — the runtime error taxonomy.
//
// Eval errors are terminal: evaluation stops at the first one and no
// partial result escapes. They are disjoint from parse errors, so a caller
// of Eval can always tell which phase failed (see evaluator.go).
package lasagne

import "fmt"

// EvalErrorKind discriminates the runtime failure cases.
type EvalErrorKind int

const (
	// EmptyProgram: evaluation was asked for the value of zero statements.
	EmptyProgram EvalErrorKind = iota
	// IncorrectPrefixOperand: a prefix operator was applied to a value of
	// the wrong type ('!' needs a boolean, '-' needs an integer).
	IncorrectPrefixOperand
	// BooleanInfixOperator: two booleans met an operator other than == / !=.
	BooleanInfixOperator
	// IntegerInfixOperator: two integers met an operator with no integer
	// meaning.
	IntegerInfixOperator
	// InfixTypeMismatch: the two operand types have no common dispatch
	// (e.g. integer against boolean). Carries both evaluated values.
	InfixTypeMismatch
	// DivisionByZero: integer division with a zero right operand.
	DivisionByZero
	// Unsupported: the construct parses but has no defined evaluation
	// semantics yet.
	Unsupported
)

func (k EvalErrorKind) String() string {
	switch k {
	case EmptyProgram:
		return "EmptyProgram"
	case IncorrectPrefixOperand:
		return "IncorrectPrefixOperand"
	case BooleanInfixOperator:
		return "BooleanInfixOperator"
	case IntegerInfixOperator:
		return "IntegerInfixOperator"
	case InfixTypeMismatch:
		return "InfixTypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case Unsupported:
		return "Unsupported"
	default:
		return "UnknownEvalError"
	}
}

// EvalError is a terminal runtime failure.
//
// Field validity by kind:
//   - IncorrectPrefixOperand: Operator, Operand.
//   - BooleanInfixOperator, IntegerInfixOperator: Operator.
//   - InfixTypeMismatch, DivisionByZero: Operator, Left, Right.
//   - Unsupported: Construct names the language feature.
type EvalError struct {
	Kind      EvalErrorKind
	Operator  Operator
	Operand   *Value
	Left      *Value
	Right     *Value
	Construct string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case EmptyProgram:
		return "empty program has no value"
	case IncorrectPrefixOperand:
		return fmt.Sprintf("prefix operator '%s' cannot be applied to %s %s",
			e.Operator, e.Operand.Tag, e.Operand)
	case BooleanInfixOperator:
		return fmt.Sprintf("operator '%s' is not defined for booleans", e.Operator)
	case IntegerInfixOperator:
		return fmt.Sprintf("operator '%s' is not defined for integers", e.Operator)
	case InfixTypeMismatch:
		return fmt.Sprintf("operator '%s' cannot combine %s %s and %s %s",
			e.Operator, e.Left.Tag, e.Left, e.Right.Tag, e.Right)
	case DivisionByZero:
		return fmt.Sprintf("division by zero: %s / %s", e.Left, e.Right)
	case Unsupported:
		return fmt.Sprintf("%s evaluation is not supported yet", e.Construct)
	default:
		return "unknown evaluation error"
	}
}

func unsupported(construct string) *EvalError {
	return &EvalError{Kind: Unsupported, Construct: construct}
}
