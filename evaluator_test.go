// evaluator_test.go
package lasagne

import "testing"

// --- helpers ---------------------------------------------------------------

func mustEval(t *testing.T, src string) Value {
	t.Helper()
	v, err := Eval(src, NewEnv(nil))
	if err != nil {
		t.Fatalf("eval error for %q: %v", src, err)
	}
	return v
}

func wantInt(t *testing.T, src string, want int32) {
	t.Helper()
	v := mustEval(t, src)
	if v.Tag != VTInteger {
		t.Fatalf("%q: want integer, got %s %s", src, v.Tag, v)
	}
	if got := v.AsInt(); got != want {
		t.Fatalf("%q: want %d, got %d", src, want, got)
	}
}

func wantBool(t *testing.T, src string, want bool) {
	t.Helper()
	v := mustEval(t, src)
	if v.Tag != VTBoolean {
		t.Fatalf("%q: want boolean, got %s %s", src, v.Tag, v)
	}
	if got := v.AsBool(); got != want {
		t.Fatalf("%q: want %v, got %v", src, want, got)
	}
}

func wantEvalError(t *testing.T, src string, kind EvalErrorKind) *EvalError {
	t.Helper()
	_, err := Eval(src, NewEnv(nil))
	if err == nil {
		t.Fatalf("%q: want eval error %s, got none", src, kind)
	}
	everr, ok := err.(*EvalError)
	if !ok {
		t.Fatalf("%q: want *EvalError, got %T: %v", src, err, err)
	}
	if everr.Kind != kind {
		t.Fatalf("%q: want %s, got %s (%v)", src, kind, everr.Kind, everr)
	}
	return everr
}

// --- values ----------------------------------------------------------------

func Test_Evaluator_Integer_Arithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int32
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}
	for _, tc := range cases {
		wantInt(t, tc.src, tc.want)
	}
}

func Test_Evaluator_Boolean_Expressions(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"false != true", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
		{"(1 > 2) == true", false},
		{"(1 > 2) == false", true},
	}
	for _, tc := range cases {
		wantBool(t, tc.src, tc.want)
	}
}

func Test_Evaluator_Bang_Operator(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"!true", false},
		{"!false", true},
		{"!!true", true},
		{"!!false", false},
	}
	for _, tc := range cases {
		wantBool(t, tc.src, tc.want)
	}
}

func Test_Evaluator_Division_Truncates(t *testing.T) {
	wantInt(t, "7 / 2", 3)
	wantInt(t, "-7 / 2", -3)
}

func Test_Evaluator_Integer_Overflow_Wraps(t *testing.T) {
	wantInt(t, "2147483647 + 1", -2147483648)
	wantInt(t, "-2147483647 - 2", 2147483647)
}

func Test_Evaluator_Last_Statement_Wins(t *testing.T) {
	wantInt(t, "1. 2. 3.", 3)
	wantBool(t, "1 + 1. true.", true)
}

// --- errors ----------------------------------------------------------------

func Test_Evaluator_Empty_Program(t *testing.T) {
	wantEvalError(t, "", EmptyProgram)
}

func Test_Evaluator_Division_By_Zero(t *testing.T) {
	everr := wantEvalError(t, "5 / 0", DivisionByZero)
	if everr.Left.AsInt() != 5 || everr.Right.AsInt() != 0 {
		t.Fatalf("want operands 5 and 0, got %s and %s", everr.Left, everr.Right)
	}
	wantEvalError(t, "10 / (3 - 3)", DivisionByZero)
}

func Test_Evaluator_Infix_Type_Mismatch(t *testing.T) {
	everr := wantEvalError(t, "5 == true", InfixTypeMismatch)
	if everr.Left.Tag != VTInteger || everr.Right.Tag != VTBoolean {
		t.Fatalf("want integer/boolean operands, got %s/%s", everr.Left.Tag, everr.Right.Tag)
	}
	wantEvalError(t, "true + 5", InfixTypeMismatch)
	wantEvalError(t, "1 < true", InfixTypeMismatch)
}

func Test_Evaluator_Boolean_Infix_Operator(t *testing.T) {
	wantEvalError(t, "true + false", BooleanInfixOperator)
	wantEvalError(t, "true < false", BooleanInfixOperator)
}

func Test_Evaluator_Prefix_Operand_Types(t *testing.T) {
	everr := wantEvalError(t, "!5", IncorrectPrefixOperand)
	if everr.Operator != OpBang || everr.Operand.AsInt() != 5 {
		t.Fatalf("want '!' on 5, got '%s' on %s", everr.Operator, everr.Operand)
	}
	wantEvalError(t, "-true", IncorrectPrefixOperand)
}

func Test_Evaluator_First_Fault_Stops(t *testing.T) {
	// The second statement faults; the third never runs and the fault is
	// what comes back.
	wantEvalError(t, "1. 5 / 0. 2.", DivisionByZero)
}

func Test_Evaluator_Unsupported_Constructs(t *testing.T) {
	cases := []struct {
		src       string
		construct string
	}{
		{"x: 5.", "assign statement"},
		{"return 5.", "return statement"},
		{"foobar.", "identifier"},
		{"if true: 1.~", "if expression"},
		{"fn(x): x.~", "function literal"},
	}
	for _, tc := range cases {
		everr := wantEvalError(t, tc.src, Unsupported)
		if everr.Construct != tc.construct {
			t.Fatalf("%q: want construct %q, got %q", tc.src, tc.construct, everr.Construct)
		}
	}
}

func Test_Evaluator_Outcome_Taxonomies_Are_Disjoint(t *testing.T) {
	env := NewEnv(nil)

	if _, err := Eval("x = 5", env); err == nil {
		t.Fatal("want lex error")
	} else if _, ok := err.(*LexError); !ok {
		t.Fatalf("want *LexError, got %T", err)
	}

	if _, err := Eval("* 5.", env); err == nil {
		t.Fatal("want parse errors")
	} else if _, ok := err.(ParseErrors); !ok {
		t.Fatalf("want ParseErrors, got %T", err)
	}

	if _, err := Eval("5 / 0.", env); err == nil {
		t.Fatal("want eval error")
	} else if _, ok := err.(*EvalError); !ok {
		t.Fatalf("want *EvalError, got %T", err)
	}

	if v, err := Eval("5.", env); err != nil || v.AsInt() != 5 {
		t.Fatalf("want value 5, got %v, %v", v, err)
	}
}
