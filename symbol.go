package cilisp

import (
	"math"
)

// Symbol is one binding of a let scope.
type Symbol struct {
	ID    string
	Type  NumType
	Value NodeID

	cache *Number
	busy  bool
	next  *Symbol
}

func (s *Symbol) Next() *Symbol {
	return s.next
}

// Cached returns the memoized value of the binding, if it was evaluated.
func (s *Symbol) Cached() (Number, bool) {
	if s.cache == nil {
		return Number{}, false
	}
	return *s.cache, true
}

// NewSymbol creates a binding of id to the subtree val. A typed binding of a
// literal retags the literal right away.
func (t *Tree) NewSymbol(typ NumType, id string, val NodeID) *Symbol {
	if n := t.get(val); n != nil && n.t == NodeNumber {
		n.num = t.cast(typ, n.num)
	}
	return &Symbol{
		ID:    id,
		Type:  typ,
		Value: val,
	}
}

func (t *Tree) cast(typ NumType, v Number) Number {
	if v.IsNaN() {
		return v
	}
	switch typ {
	case IntType:
		if v.Type == IntType {
			return v
		}
		i := math.Trunc(v.Value)
		if i != v.Value {
			t.rep.Warn("Precision loss on int cast from %f to %.0f", v.Value, i)
		}
		return Int(i)
	case DoubleType:
		return Double(v.Value)
	}
	return v
}

// Bind prepends sym to list. An id already bound in the same list is
// rejected, leaving list untouched.
func (t *Tree) Bind(sym, list *Symbol) *Symbol {
	for s := list; s != nil; s = s.next {
		if s.ID == sym.ID {
			t.rep.Warn("The symbol \"%s\" already exists within the scope. Value remains unchanged.", sym.ID)
			t.Free(sym.Value)
			return list
		}
	}
	sym.next = list
	return sym
}

// Lookup finds the binding of name visible from the node at from, walking up
// the parent links.
func (t *Tree) Lookup(name string, from NodeID) *Symbol {
	for n := t.get(from); n != nil; n = t.get(n.parent) {
		for s := n.symbols; s != nil; s = s.next {
			if s.ID == name {
				return s
			}
		}
	}
	return nil
}

func (e *Env) resolve(id NodeID) (Number, error) {
	name := e.tree.nodes[id].name
	s := e.tree.Lookup(name, id)
	if s == nil {
		e.rep.Warn(">>> Symbol \"%s\" not found. Returning NAN.", name)
		return NaN(), nil
	}
	if s.cache != nil {
		return *s.cache, nil
	}
	if s.busy {
		e.rep.Warn("Circular reference to symbol \"%s\". Returning NAN.", name)
		return NaN(), nil
	}

	s.busy = true
	v, err := e.Eval(s.Value)
	s.busy = false
	if err != nil {
		return NaN(), err
	}
	if e.tree.Type(s.Value) == NodeNumber {
		return v, nil
	}
	v = e.tree.cast(s.Type, v)
	s.cache = &v
	return v, nil
}
