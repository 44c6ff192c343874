// env_test.go
package lasagne

import "testing"

func Test_Env_Define_And_Get(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", Int(5))

	v, ok := env.Get("x")
	if !ok || v.AsInt() != 5 {
		t.Fatalf("want 5, got %v, %v", v, ok)
	}
	if _, ok := env.Get("missing"); ok {
		t.Fatal("unbound name resolved")
	}
}

func Test_Env_Lookup_Walks_Parents(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)

	v, ok := inner.Get("x")
	if !ok || v.AsInt() != 1 {
		t.Fatalf("want outer binding, got %v, %v", v, ok)
	}
}

func Test_Env_Define_Shadows(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)
	inner.Define("x", Int(2))

	if v, _ := inner.Get("x"); v.AsInt() != 2 {
		t.Fatalf("inner: want 2, got %s", v)
	}
	if v, _ := outer.Get("x"); v.AsInt() != 1 {
		t.Fatalf("outer: want 1 untouched, got %s", v)
	}
}

func Test_Env_Set_Updates_Nearest_Binding(t *testing.T) {
	outer := NewEnv(nil)
	outer.Define("x", Int(1))
	inner := NewEnv(outer)

	if err := inner.Set("x", Int(9)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := outer.Get("x"); v.AsInt() != 9 {
		t.Fatalf("want outer binding updated to 9, got %s", v)
	}
}

func Test_Env_Set_Rejects_Unbound_Names(t *testing.T) {
	env := NewEnv(nil)
	if err := env.Set("ghost", Bool(true)); err == nil {
		t.Fatal("want error for unbound name")
	}
}
