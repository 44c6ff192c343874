// env.go — lexical environments.
//
// An Env is a mutable name→Value frame with an optional parent; lookups
// walk parent-ward. A child holds a plain pointer to its parent, so the
// parent must outlive every child referencing it — frames form a chain,
// never a cycle.
//
// Evaluation does not consult environments yet: identifier lookup is one of
// the constructs the evaluator reports as unsupported (evaluator.go). The
// frames exist so hosts and the REPL can already carry state across runs.
package lasagne

import "fmt"

// Env is a lexical environment frame with a parent link.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a new frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Define binds name to v in this frame, shadowing any outer binding.
func (e *Env) Define(name Identifier, v Value) {
	e.table[string(name)] = v
}

// Set updates the nearest existing binding of name. It never implicitly
// defines; an unbound name is an error.
func (e *Env) Set(name Identifier, v Value) error {
	if _, ok := e.table[string(name)]; ok {
		e.table[string(name)] = v
		return nil
	}
	if e.parent != nil {
		return e.parent.Set(name, v)
	}
	return fmt.Errorf("undefined variable: %s", name)
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name Identifier) (Value, bool) {
	if v, ok := e.table[string(name)]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}
