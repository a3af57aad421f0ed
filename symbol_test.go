package cilisp

import (
	"strings"
	"testing"
)

func TestBindRejectsDuplicate(t *testing.T) {
	env, buf := newTestEnv()
	tree := env.Tree()
	must := mustNode(t)

	one := must(tree.NewNumber(Int(1)))
	two := must(tree.NewNumber(Int(2)))
	list := tree.Bind(tree.NewSymbol(NoType, "x", one), nil)
	got := tree.Bind(tree.NewSymbol(NoType, "x", two), list)
	if got != list {
		t.Fatal("duplicate bind changed the list")
	}
	if list.Value != one || list.Next() != nil {
		t.Error("original binding was modified")
	}
	if env.Reporter().Count() != 1 {
		t.Errorf("want 1 warning but got %d", env.Reporter().Count())
	}
	want := "WARNING: The symbol \"x\" already exists within the scope. Value remains unchanged.\n"
	if buf.String() != want {
		t.Errorf("want %q but got %q", want, buf.String())
	}
	if tree.Live() != 1 {
		t.Errorf("rejected value was not released, %d live", tree.Live())
	}

	y := tree.Bind(tree.NewSymbol(NoType, "y", must(tree.NewNumber(Int(3)))), list)
	if y.ID != "y" || y.Next() != list {
		t.Error("new binding was not prepended")
	}
}

func TestScopeLookup(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "((let (x 1)) ((let (y 2)) x))", want: 1},
		{input: "((let (x 1)) ((let (x 2)) x))", want: 2},
		{input: "((let (x 1)) (add ((let (x 2)) x) x))", want: 3},
		{input: "((let (x 1)) (add x ((let (x 20)) x) x))", want: 22},
		{input: "((let (x 1) (y (add x 1))) y)", want: 2},
		{input: "((let (x 5)) (cond x ((let (x 7)) x) x))", want: 7},
	}
	for _, test := range tests {
		env, _ := newTestEnv()
		got := evalOne(t, env, test.input)
		if got.Value != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got.Value)
		}
		if env.Reporter().Count() != 0 {
			t.Errorf("%s: unexpected warnings", test.input)
		}
	}
}

func TestUnresolvedSymbol(t *testing.T) {
	env, buf := newTestEnv()
	got := evalOne(t, env, "(add 1 nope)")
	if !got.IsNaN() {
		t.Errorf("want NaN but got %v", got)
	}
	want := "WARNING: >>> Symbol \"nope\" not found. Returning NAN.\n"
	if buf.String() != want {
		t.Errorf("want %q but got %q", want, buf.String())
	}
}

func TestSymbolMemoized(t *testing.T) {
	env, _ := newTestEnv()
	tree := env.Tree()
	id, err := NewParser(strings.NewReader("((let (r (rand))) (sub r r))"), tree).ParseExpr()
	if err != nil {
		t.Fatal(err)
	}
	sym := tree.Symbols(id)
	if _, ok := sym.Cached(); ok {
		t.Fatal("binding cached before evaluation")
	}
	v, err := env.Eval(id)
	if err != nil {
		t.Fatal(err)
	}
	if v.Value != 0 {
		t.Errorf("two references of r differ by %v", v.Value)
	}
	first, ok := sym.Cached()
	if !ok {
		t.Fatal("binding not cached")
	}
	if first.Type != DoubleType || first.Value < 0 || first.Value >= 1 {
		t.Errorf("unexpected cached value %v", first)
	}
	if _, err := env.Eval(id); err != nil {
		t.Fatal(err)
	}
	if again, _ := sym.Cached(); again != first {
		t.Errorf("cache changed from %v to %v", first, again)
	}
	if tree.Type(sym.Value) != NodeFunc {
		t.Error("bound subtree was replaced")
	}
	tree.Free(id)
}

func TestSymbolSideEffectOnce(t *testing.T) {
	env, buf := newTestEnv()
	env.SetInput(strings.NewReader("4\n9\n"))
	got := evalOne(t, env, "((let (n (read))) (add n n))")
	if got != Int(8) {
		t.Errorf("want 8 but got %v", got)
	}
	if n := strings.Count(buf.String(), "read :: "); n != 1 {
		t.Errorf("want 1 read but got %d", n)
	}
}

func TestTypedBindings(t *testing.T) {
	tests := []struct {
		input string
		want  Number
		warns int
	}{
		{input: "((let (int a 2.7)) a)", want: Int(2), warns: 1},
		{input: "((let (int a 2.0)) a)", want: Int(2)},
		{input: "((let (double a 2)) a)", want: Double(2)},
		{input: "((let (int a (div 7.0 2))) a)", want: Int(3), warns: 1},
		{input: "((let (int a (div 7.0 2))) (add a a))", want: Int(6), warns: 1},
		{input: "((let (double a (add 1 2))) a)", want: Double(3)},
		{input: "((let (a (add 1 2.5))) a)", want: Double(3.5)},
		{input: "((let (int a (sqrt -1))) a)", want: NaN()},
	}
	for _, test := range tests {
		env, _ := newTestEnv()
		got := evalOne(t, env, test.input)
		if got.Type != test.want.Type || (got.Value != test.want.Value && !(got.IsNaN() && test.want.IsNaN())) {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
		if n := env.Reporter().Count(); n != test.warns {
			t.Errorf("%s: want %d warnings but got %d", test.input, test.warns, n)
		}
	}
}

func TestCircularBinding(t *testing.T) {
	env, buf := newTestEnv()
	got := evalOne(t, env, "((let (a b) (b a)) a)")
	if !got.IsNaN() {
		t.Errorf("want NaN but got %v", got)
	}
	want := "WARNING: Circular reference to symbol \"a\". Returning NAN.\n"
	if buf.String() != want {
		t.Errorf("want %q but got %q", want, buf.String())
	}
}
