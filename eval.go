package cilisp

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Env evaluates trees built in its Tree. It carries the input and output
// streams used by read and print.
type Env struct {
	tree *Tree
	rep  *Reporter
	in   *bufio.Reader
	out  io.Writer
	rnd  *rand.Rand
	cfg  *Config
}

func NewEnv(cfg *Config) *Env {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rep := NewReporter(os.Stdout, cfg.Color)
	tree := NewTree(rep)
	tree.SetLimit(cfg.MaxNodes)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Env{
		tree: tree,
		rep:  rep,
		in:   bufio.NewReader(os.Stdin),
		out:  os.Stdout,
		rnd:  rand.New(rand.NewSource(seed)),
		cfg:  cfg,
	}
}

func (e *Env) Tree() *Tree {
	return e.tree
}

func (e *Env) Reporter() *Reporter {
	return e.rep
}

// SetOutput redirects printed values and diagnostics to w.
func (e *Env) SetOutput(w io.Writer) {
	e.out = w
	e.rep.out = w
	e.rep.color = useColor(w, e.cfg.Color)
}

// SetInput sets the stream read consumes lines from.
func (e *Env) SetInput(r io.Reader) {
	e.in = bufio.NewReader(r)
}

// Eval computes the value of the node at id. Problems in the program are
// reported as warnings and replaced by fallback values; the only error is a
// *FatalError.
func (e *Env) Eval(id NodeID) (Number, error) {
	n := e.tree.get(id)
	if n == nil {
		return NaN(), e.rep.Fatal("NULL ast node passed into eval!")
	}
	switch n.t {
	case NodeNumber:
		return n.num, nil
	case NodeSymbol:
		return e.resolve(id)
	case NodeScope:
		return e.Eval(n.child)
	case NodeCond:
		tru, fls := n.tru, n.fls
		c, err := e.Eval(n.cond)
		if err != nil {
			return NaN(), err
		}
		if c.Value == 0 {
			return e.Eval(fls)
		}
		return e.Eval(tru)
	case NodeFunc:
		return e.call(id)
	}
	return NaN(), e.rep.Fatal("invalid node type %d", n.t)
}

func (e *Env) call(id NodeID) (Number, error) {
	fn, ok := ops[e.tree.nodes[id].fn]
	if !ok {
		fn = ops[FuncCustom]
	}
	return fn(e, id)
}

// EvalPrint evaluates a top level expression, prints its value and frees it.
func (e *Env) EvalPrint(id NodeID) (Number, error) {
	v, err := e.Eval(id)
	e.tree.Free(id)
	if err != nil {
		return v, err
	}
	fmt.Fprintln(e.out, v)
	return v, nil
}

// Run reads every top level expression of r, printing the value of each.
func (e *Env) Run(r io.Reader) error {
	parser := NewParser(r, e.tree)
	for {
		id, err := parser.ParseExpr()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err = e.EvalPrint(id); err != nil {
			return err
		}
	}
}

// RunString is Run over a string.
func (e *Env) RunString(s string) error {
	return e.Run(strings.NewReader(s))
}
