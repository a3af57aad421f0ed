package cilisp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type FuncType int

const (
	FuncNeg FuncType = iota
	FuncAbs
	FuncAdd
	FuncSub
	FuncMult
	FuncDiv
	FuncRem
	FuncExp
	FuncExp2
	FuncPow
	FuncLog
	FuncSqrt
	FuncCbrt
	FuncHypot
	FuncMax
	FuncMin
	FuncEqual
	FuncLess
	FuncGreater
	FuncRand
	FuncRead
	FuncPrint
	// FuncCustom is a call of a user defined function. Those are not
	// implemented yet and evaluate to a constant.
	FuncCustom
)

// funcNames must stay in the order of the FuncType constants.
var funcNames = []string{
	"neg",
	"abs",
	"add",
	"sub",
	"mult",
	"div",
	"remainder",
	"exp",
	"exp2",
	"pow",
	"log",
	"sqrt",
	"cbrt",
	"hypot",
	"max",
	"min",
	"equal",
	"less",
	"greater",
	"rand",
	"read",
	"print",
}

// ResolveFunc maps an operator name to its FuncType. Unknown names are
// FuncCustom.
func ResolveFunc(name string) FuncType {
	for i, n := range funcNames {
		if n == name {
			return FuncType(i)
		}
	}
	return FuncCustom
}

func (f FuncType) String() string {
	if f >= 0 && int(f) < len(funcNames) {
		return funcNames[f]
	}
	return "custom"
}

// Fn evaluates the function node fn.
type Fn func(e *Env, fn NodeID) (Number, error)

var ops map[FuncType]Fn

func init() {
	ops = make(map[FuncType]Fn)
	ops[FuncNeg] = unary(func(v Number) Number {
		return makeNumber(v.Type, -v.Value)
	})
	ops[FuncAbs] = unary(func(v Number) Number {
		return makeNumber(v.Type, math.Abs(v.Value))
	})
	ops[FuncAdd] = doAdd
	ops[FuncSub] = binary(func(a, b Number) Number {
		return makeNumber(promote(a.Type, b.Type), a.Value-b.Value)
	})
	ops[FuncMult] = doMult
	ops[FuncDiv] = binary(doDiv)
	ops[FuncRem] = binary(doRem)
	ops[FuncExp] = unary(func(v Number) Number {
		return makeNumber(DoubleType, math.Exp(v.Value))
	})
	ops[FuncExp2] = unary(doExp2)
	ops[FuncPow] = binary(doPow)
	ops[FuncLog] = unary(func(v Number) Number {
		return makeNumber(DoubleType, math.Log(v.Value))
	})
	ops[FuncSqrt] = unary(func(v Number) Number {
		return makeNumber(DoubleType, math.Sqrt(v.Value))
	})
	ops[FuncCbrt] = unary(func(v Number) Number {
		return makeNumber(DoubleType, math.Cbrt(v.Value))
	})
	ops[FuncHypot] = doHypot
	ops[FuncMax] = extremum(func(x, best float64) bool { return x > best })
	ops[FuncMin] = extremum(func(x, best float64) bool { return x < best })
	ops[FuncEqual] = binary(compare(func(a, b float64) bool { return a == b }))
	ops[FuncLess] = binary(compare(func(a, b float64) bool { return a < b }))
	ops[FuncGreater] = binary(compare(func(a, b float64) bool { return a > b }))
	ops[FuncRand] = doRand
	ops[FuncRead] = doRead
	ops[FuncPrint] = doPrint
	ops[FuncCustom] = doCustom
}

// operands evaluates the first n operands of the function node fn, left to
// right. With fewer than n operands nothing is evaluated and ok is false.
// Operands past n are never evaluated; they cause a single warning.
func (e *Env) operands(fn NodeID, n int, fallback string) (vals []Number, ok bool, err error) {
	head := e.tree.nodes[fn].child
	count := 0
	for c := head; c != NoNode && count <= n; c = e.tree.Next(c) {
		count++
	}
	if count < n {
		e.rep.Warn("Not enough parameters. Returning %s", fallback)
		return nil, false, nil
	}

	vals = make([]Number, 0, n)
	c := head
	for i := 0; i < n; i++ {
		v, err := e.Eval(c)
		if err != nil {
			return nil, false, err
		}
		vals = append(vals, v)
		c = e.tree.Next(c)
	}
	if count > n {
		e.rep.Warn("Extra parameters ignored.")
	}
	return vals, true, nil
}

// each evaluates every operand of fn in list order.
func (e *Env) each(fn NodeID, f func(Number)) error {
	for c := e.tree.nodes[fn].child; c != NoNode; c = e.tree.Next(c) {
		v, err := e.Eval(c)
		if err != nil {
			return err
		}
		f(v)
	}
	return nil
}

func (e *Env) argc(fn NodeID) int {
	count := 0
	for c := e.tree.nodes[fn].child; c != NoNode; c = e.tree.Next(c) {
		count++
	}
	return count
}

func unary(f func(Number) Number) Fn {
	return func(e *Env, fn NodeID) (Number, error) {
		vals, ok, err := e.operands(fn, 1, "NAN")
		if !ok {
			return NaN(), err
		}
		return f(vals[0]), nil
	}
}

func binary(f func(a, b Number) Number) Fn {
	return func(e *Env, fn NodeID) (Number, error) {
		vals, ok, err := e.operands(fn, 2, "NAN")
		if !ok {
			return NaN(), err
		}
		return f(vals[0], vals[1]), nil
	}
}

func compare(f func(a, b float64) bool) func(a, b Number) Number {
	return func(a, b Number) Number {
		if f(a.Value, b.Value) {
			return Int(1)
		}
		return Int(0)
	}
}

func doAdd(e *Env, fn NodeID) (Number, error) {
	if e.argc(fn) == 0 {
		e.rep.Warn("Not enough parameters. Returning 0")
		return Int(0), nil
	}
	ret := Int(0)
	err := e.each(fn, func(v Number) {
		ret.Value += v.Value
		ret.Type = promote(ret.Type, v.Type)
	})
	if err != nil {
		return NaN(), err
	}
	return makeNumber(ret.Type, ret.Value), nil
}

func doMult(e *Env, fn NodeID) (Number, error) {
	if e.argc(fn) == 0 {
		e.rep.Warn("Not enough parameters. Returning 1")
		return Int(1), nil
	}
	ret := Int(1)
	err := e.each(fn, func(v Number) {
		ret.Value *= v.Value
		ret.Type = promote(ret.Type, v.Type)
	})
	if err != nil {
		return NaN(), err
	}
	return makeNumber(ret.Type, ret.Value), nil
}

func doHypot(e *Env, fn NodeID) (Number, error) {
	if e.argc(fn) == 0 {
		e.rep.Warn("Not enough parameters. Returning 0")
		return Int(0), nil
	}
	var sum float64
	err := e.each(fn, func(v Number) {
		sum += v.Value * v.Value
	})
	if err != nil {
		return NaN(), err
	}
	return makeNumber(DoubleType, math.Sqrt(sum)), nil
}

func extremum(better func(x, best float64) bool) Fn {
	return func(e *Env, fn NodeID) (Number, error) {
		if e.argc(fn) == 0 {
			e.rep.Warn("Not enough parameters. Returning NAN")
			return NaN(), nil
		}
		var best Number
		first := true
		err := e.each(fn, func(v Number) {
			if first || better(v.Value, best.Value) {
				best = v
			}
			first = false
		})
		if err != nil {
			return NaN(), err
		}
		return best, nil
	}
}

func doDiv(a, b Number) Number {
	t := promote(a.Type, b.Type)
	if t == IntType {
		d := math.Trunc(b.Value)
		if d == 0 {
			return NaN()
		}
		return Int(math.Trunc(math.Trunc(a.Value) / d))
	}
	return makeNumber(t, a.Value/b.Value)
}

func doRem(a, b Number) Number {
	r := math.Mod(a.Value, b.Value)
	if r < 0 {
		r += math.Abs(b.Value)
	}
	return makeNumber(promote(a.Type, b.Type), r)
}

func doPow(a, b Number) Number {
	t := promote(a.Type, b.Type)
	r := math.Pow(a.Value, b.Value)
	if t == IntType && r != math.Trunc(r) {
		t = DoubleType
	}
	return makeNumber(t, r)
}

func doExp2(v Number) Number {
	t := v.Type
	if v.Value < 0 {
		t = DoubleType
	}
	return makeNumber(t, math.Exp2(v.Value))
}

// noOperands warns when a function that takes no operands got some. They are
// not evaluated.
func (e *Env) noOperands(fn NodeID) {
	if e.tree.nodes[fn].child != NoNode {
		e.rep.Warn("Extra parameters ignored.")
	}
}

func doRand(e *Env, fn NodeID) (Number, error) {
	e.noOperands(fn)
	return Double(e.rnd.Float64()), nil
}

func doRead(e *Env, fn NodeID) (Number, error) {
	e.noOperands(fn)
	fmt.Fprint(e.out, e.cfg.ReadPrompt)
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		if e.cfg.EchoRead {
			fmt.Fprintln(e.out)
		}
		e.rep.Warn("Invalid read entry! NAN returned!")
		return NaN(), nil
	}
	line = strings.TrimSpace(line)
	if e.cfg.EchoRead {
		fmt.Fprintln(e.out, line)
	}

	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		e.rep.Warn("Invalid read entry! NAN returned!")
		return NaN(), nil
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return makeNumber(DoubleType, f), nil
	}
	return Int(f), nil
}

func doPrint(e *Env, fn NodeID) (Number, error) {
	vals, ok, err := e.operands(fn, 1, "NAN")
	if !ok {
		return NaN(), err
	}
	fmt.Fprintln(e.out, vals[0])
	return vals[0], nil
}

// doCustom stands in for user defined functions, which are not implemented.
// The arguments are not evaluated.
func doCustom(e *Env, fn NodeID) (Number, error) {
	e.rep.Warn("Function \"%s\" is not implemented. Returning 1", e.tree.nodes[fn].name)
	return Int(1), nil
}
