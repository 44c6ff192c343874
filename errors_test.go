// errors_test.go
package lasagne

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_Lex_Snippet(t *testing.T) {
	src := "x = 5"
	_, err := NewLexer(src).Scan()
	if err == nil {
		t.Fatal("want lex error")
	}

	out := WrapErrorWithSource(err, src).Error()
	for _, want := range []string{"LEXICAL ERROR", "1:3", "x = 5", "^"} {
		if !strings.Contains(out, want) {
			t.Fatalf("want %q in:\n%s", want, out)
		}
	}
}

func Test_Errors_Parse_Snippet_With_Name(t *testing.T) {
	src := "y: 3.\nx: (1 + 2.\nz: 4."
	program, err := ParseSource(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if program.Valid() {
		t.Fatal("want a parse error")
	}

	out := WrapErrorWithName(program.Errors, "sample.lsa", src).Error()
	for _, want := range []string{"PARSE ERROR", "sample.lsa", "x: (1 + 2.", "^"} {
		if !strings.Contains(out, want) {
			t.Fatalf("want %q in:\n%s", want, out)
		}
	}

	// Context lines around the offending one.
	if !strings.Contains(out, "y: 3.") || !strings.Contains(out, "z: 4.") {
		t.Fatalf("want surrounding context lines in:\n%s", out)
	}
}

func Test_Errors_One_Snippet_Per_Recovered_Error(t *testing.T) {
	src := "* 1.\n* 2."
	program, err := ParseSource(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if len(program.Errors) != 2 {
		t.Fatalf("want 2 parse errors, got %v", program.Errors)
	}

	out := WrapErrorWithSource(program.Errors, src).Error()
	if got := strings.Count(out, "PARSE ERROR"); got != 2 {
		t.Fatalf("want 2 snippets, got %d in:\n%s", got, out)
	}
}

func Test_Errors_Unrecognized_Errors_Pass_Through(t *testing.T) {
	plain := errors.New("disk on fire")
	if got := WrapErrorWithSource(plain, "x"); got != plain {
		t.Fatalf("want pass-through, got %v", got)
	}

	everr := &EvalError{Kind: DivisionByZero, Operator: OpDividedBy}
	everr.Left, everr.Right = ref(Int(5)), ref(Int(0))
	if got := WrapErrorWithSource(everr, "5 / 0."); got != error(everr) {
		t.Fatalf("want pass-through, got %v", got)
	}
}

func Test_Errors_Snippet_Clamps_Out_Of_Range_Positions(t *testing.T) {
	// Errors reported at end of input carry no position; rendering must
	// still produce a snippet instead of panicking.
	src := "x:"
	program, err := ParseSource(src)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	out := WrapErrorWithSource(program.Errors, src).Error()
	if !strings.Contains(out, "PARSE ERROR") || !strings.Contains(out, "^") {
		t.Fatalf("want a rendered snippet, got:\n%s", out)
	}
}

func ref(v Value) *Value { return &v }
