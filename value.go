package cilisp

import (
	"fmt"
	"math"
)

type NumType int

const (
	IntType NumType = iota
	DoubleType
	NoType
)

var typeNames = []string{
	"int",
	"double",
}

// ResolveType maps a declared type keyword to its NumType. Unknown names
// resolve to NoType.
func ResolveType(name string) NumType {
	for i, n := range typeNames {
		if n == name {
			return NumType(i)
		}
	}
	return NoType
}

func (t NumType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "notype"
}

// Number is the result of every evaluation. Int values are stored as float64
// and are only truncated where a binding declares int.
type Number struct {
	Type  NumType
	Value float64
}

func NaN() Number {
	return Number{Type: DoubleType, Value: math.NaN()}
}

func Int(v float64) Number {
	return Number{Type: IntType, Value: v}
}

func Double(v float64) Number {
	return Number{Type: DoubleType, Value: v}
}

func (n Number) IsNaN() bool {
	return math.IsNaN(n.Value)
}

func promote(a, b NumType) NumType {
	if a == IntType && b == IntType {
		return IntType
	}
	return DoubleType
}

func makeNumber(t NumType, v float64) Number {
	if math.IsNaN(v) {
		return NaN()
	}
	return Number{Type: t, Value: v}
}

func (n Number) String() string {
	switch n.Type {
	case IntType:
		return fmt.Sprintf("Integer : %.0f", n.Value)
	case DoubleType:
		return fmt.Sprintf("Double : %f", n.Value)
	default:
		return fmt.Sprintf("No Type : %f", n.Value)
	}
}
