// ast_test.go
package lasagne

import (
	"reflect"
	"testing"
)

func Test_AST_Statement_Rendering(t *testing.T) {
	cases := []struct {
		stmt Statement
		want string
	}{
		{&AssignStatement{Name: "x", Value: IntegerLiteral(5)}, "x: 5."},
		{&ReturnStatement{Value: &IdentifierLiteral{Name: "foobar"}}, "return foobar."},
		{&ExpressionStatement{Expression: BooleanLiteral(true)}, "true"},
	}
	for _, tc := range cases {
		if got := tc.stmt.String(); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func Test_AST_Expression_Rendering(t *testing.T) {
	cases := []struct {
		expr Expression
		want string
	}{
		{IntegerLiteral(-42), "-42"},
		{BooleanLiteral(false), "false"},
		{&PrefixExpression{Operator: OpBang, Right: BooleanLiteral(true)}, "(!true)"},
		{
			&InfixExpression{Left: IntegerLiteral(1), Operator: OpPlus, Right: IntegerLiteral(2)},
			"(1 + 2)",
		},
		{
			&IfExpression{
				Condition: BooleanLiteral(true),
				Consequence: &BlockStatement{Statements: []Statement{
					&ExpressionStatement{Expression: IntegerLiteral(1)},
				}},
			},
			"if true: 1 ~",
		},
		{
			&IfExpression{
				Condition: BooleanLiteral(true),
				Consequence: &BlockStatement{Statements: []Statement{
					&ExpressionStatement{Expression: IntegerLiteral(1)},
				}},
				Alternative: &BlockStatement{Statements: []Statement{
					&ExpressionStatement{Expression: IntegerLiteral(2)},
				}},
			},
			"if true: 1 else: 2 ~",
		},
		{
			&FunctionLiteral{
				Parameters: []Identifier{"a", "b"},
				Body: &BlockStatement{Statements: []Statement{
					&ExpressionStatement{Expression: &InfixExpression{
						Left:     &IdentifierLiteral{Name: "a"},
						Operator: OpPlus,
						Right:    &IdentifierLiteral{Name: "b"},
					}},
				}},
			},
			"fn(a, b): (a + b) ~",
		},
		{
			&CallExpression{
				Function:  &IdentifierLiteral{Name: "add"},
				Arguments: []Expression{IntegerLiteral(1), IntegerLiteral(2)},
			},
			"add(1, 2)",
		},
	}
	for _, tc := range cases {
		if got := tc.expr.String(); got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, got)
		}
	}
}

func Test_AST_Rendering_Is_Source_Independent(t *testing.T) {
	// Whitespace and redundant parentheses do not survive into the
	// canonical form.
	a := mustParse(t, "1+2*3.")
	b := mustParse(t, "1  +  (2 * 3) .")
	if a.String() != b.String() {
		t.Fatalf("renderings differ: %q vs %q", a.String(), b.String())
	}
}

// Rendering round-trips: parsing the canonical form again yields the same
// tree. Holds for the operator/literal/grouping subset, whose rendering is
// itself valid source.
func Test_AST_RoundTrip(t *testing.T) {
	sources := []string{
		"a + b + c",
		"-a * b",
		"!-a",
		"(5 + 5) * 2",
		"!(true == true)",
		"a + b * c + d / e - f",
		"5 > 4 == 3 < 4",
	}
	for _, src := range sources {
		first := mustParse(t, src)
		second := mustParse(t, first.String())
		if !reflect.DeepEqual(first.Statements, second.Statements) {
			t.Fatalf("%q: re-parse of %q changed the tree", src, first.String())
		}
	}
}
