// suite.go — YAML conformance fixtures.
//
// A suite file holds source snippets with their expected rendering, value,
// or error shape. The same fixtures back the package tests (suite_test.go)
// and the `lasagne test` subcommand, so language behavior is pinned in data
// rather than duplicated across assertion code.
//
// File format (testdata/*.yaml):
//
//	cases:
//	  - name: precedence
//	    source: "5 + 2 * 10"
//	    render: "(5 + (2 * 10))"
//	    value: "25"
//	  - name: mismatch
//	    source: "5 == true"
//	    evalError: InfixTypeMismatch
//	  - name: recovery
//	    source: "* 3. x: 5."
//	    parseErrors: 1
//	    statements: 1
//
// Unknown fields are rejected so typos in fixtures fail loudly.
package lasagne

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SuiteCase is one source snippet with its expectations. Zero-valued
// expectations are skipped, so a case may pin any subset of rendering,
// value, eval error kind, parse error count, and statement count.
type SuiteCase struct {
	Name        string `yaml:"name"`
	Source      string `yaml:"source"`
	Render      string `yaml:"render,omitempty"`
	Value       string `yaml:"value,omitempty"`
	EvalError   string `yaml:"evalError,omitempty"`
	ParseErrors int    `yaml:"parseErrors,omitempty"`
	Statements  *int   `yaml:"statements,omitempty"`
}

// Suite is a parsed fixture file.
type Suite struct {
	Cases []SuiteCase `yaml:"cases"`
}

// SuiteResult reports the outcome of one case.
type SuiteResult struct {
	Name   string
	Pass   bool
	Detail string
}

// LoadSuite parses a fixture file, rejecting unknown fields.
func LoadSuite(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("suite: parse %s: %w", path, err)
	}
	for i, c := range s.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("suite: %s: case %d has no name", path, i)
		}
		if c.Source == "" {
			return nil, fmt.Errorf("suite: %s: case %q has no source", path, c.Name)
		}
	}
	return &s, nil
}

// Run executes every case against a fresh environment and reports one
// result per case, in order.
func (s *Suite) Run() []SuiteResult {
	results := make([]SuiteResult, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(c))
	}
	return results
}

func runCase(c SuiteCase) SuiteResult {
	fail := func(format string, args ...interface{}) SuiteResult {
		return SuiteResult{Name: c.Name, Detail: fmt.Sprintf(format, args...)}
	}

	program, err := ParseSource(c.Source)
	if err != nil {
		return fail("lex error: %v", err)
	}

	if got := len(program.Errors); got != c.ParseErrors {
		return fail("want %d parse error(s), got %d: %v", c.ParseErrors, got, program.Errors)
	}
	if c.Statements != nil {
		if got := len(program.Statements); got != *c.Statements {
			return fail("want %d statement(s), got %d", *c.Statements, got)
		}
	}
	if c.Render != "" {
		if got := program.String(); got != c.Render {
			return fail("want rendering %q, got %q", c.Render, got)
		}
	}

	if c.Value != "" || c.EvalError != "" {
		v, everr := EvalProgram(program, NewEnv(nil))
		switch {
		case c.EvalError != "":
			if everr == nil {
				return fail("want eval error %s, got value %s", c.EvalError, v)
			}
			if got := everr.Kind.String(); got != c.EvalError {
				return fail("want eval error %s, got %s (%v)", c.EvalError, got, everr)
			}
		case everr != nil:
			return fail("eval error: %v", everr)
		default:
			if got := v.String(); got != c.Value {
				return fail("want value %s, got %s", c.Value, got)
			}
		}
	}

	return SuiteResult{Name: c.Name, Pass: true}
}
