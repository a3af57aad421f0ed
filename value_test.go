package cilisp

import (
	"math"
	"testing"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b NumType
		want NumType
	}{
		{IntType, IntType, IntType},
		{IntType, DoubleType, DoubleType},
		{DoubleType, IntType, DoubleType},
		{DoubleType, DoubleType, DoubleType},
		{NoType, IntType, DoubleType},
	}
	for _, test := range tests {
		if got := promote(test.a, test.b); got != test.want {
			t.Errorf("want %v for (%v, %v) but got %v", test.want, test.a, test.b, got)
		}
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Int(5), "Integer : 5"},
		{Int(-12), "Integer : -12"},
		{Double(3.5), "Double : 3.500000"},
		{Double(1.0 / 3), "Double : 0.333333"},
		{NaN(), "Double : NaN"},
		{Number{Type: NoType, Value: 2}, "No Type : 2.000000"},
	}
	for _, test := range tests {
		if got := test.n.String(); got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}

func TestMakeNumberNaN(t *testing.T) {
	n := makeNumber(IntType, math.NaN())
	if n.Type != DoubleType || !n.IsNaN() {
		t.Errorf("want the NaN sentinel but got %v", n)
	}
	if n := makeNumber(IntType, 3); n != Int(3) {
		t.Errorf("want 3 but got %v", n)
	}
}

func TestResolveType(t *testing.T) {
	tests := map[string]NumType{
		"int":    IntType,
		"double": DoubleType,
		"float":  NoType,
		"":       NoType,
	}
	for name, want := range tests {
		if got := ResolveType(name); got != want {
			t.Errorf("want %v for %q but got %v", want, name, got)
		}
	}
}
