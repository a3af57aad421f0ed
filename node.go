package cilisp

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strconv"
)

type NodeType int

const (
	NodeNumber NodeType = iota
	NodeFunc
	NodeSymbol
	NodeScope
	NodeCond
)

// NodeID addresses a node in a Tree. The zero value is NoNode.
type NodeID int32

const NoNode NodeID = 0

type node struct {
	t    NodeType
	live bool

	// parent is the lexically enclosing node. It is used only for symbol
	// lookup and never owns anything.
	parent NodeID
	// next owns the following sibling of an operand list or scope body.
	next NodeID

	symbols *Symbol

	num   Number
	fn    FuncType
	name  string
	child NodeID

	cond NodeID
	tru  NodeID
	fls  NodeID
}

// Tree is the arena holding every node of the programs being evaluated.
type Tree struct {
	nodes []node
	free  []NodeID
	live  int
	max   int
	rep   *Reporter
}

func NewTree(rep *Reporter) *Tree {
	if rep == nil {
		rep = NewReporter(ioutil.Discard, "never")
	}
	return &Tree{
		nodes: make([]node, 1),
		rep:   rep,
	}
}

// SetLimit caps the number of live nodes. Zero means unlimited.
func (t *Tree) SetLimit(max int) {
	t.max = max
}

// Live returns the number of allocated nodes.
func (t *Tree) Live() int {
	return t.live
}

func (t *Tree) alloc(typ NodeType) (NodeID, *node, error) {
	if t.max > 0 && t.live >= t.max {
		return NoNode, nil, t.rep.Fatal("Memory allocation failed!")
	}
	var id NodeID
	if n := len(t.free); n > 0 {
		id = t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = node{}
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}
	t.live++
	n := &t.nodes[id]
	n.t = typ
	n.live = true
	return id, n, nil
}

func (t *Tree) get(id NodeID) *node {
	if id <= NoNode || int(id) >= len(t.nodes) || !t.nodes[id].live {
		return nil
	}
	return &t.nodes[id]
}

func (t *Tree) adopt(list NodeID, parent NodeID) {
	for n := t.get(list); n != nil; n = t.get(n.next) {
		n.parent = parent
	}
}

func (t *Tree) NewNumber(v Number) (NodeID, error) {
	id, n, err := t.alloc(NodeNumber)
	if err != nil {
		return NoNode, err
	}
	n.num = v
	return id, nil
}

// NewFunction builds a call of fn over the operand list ops. name is kept for
// FuncCustom calls and for printing.
func (t *Tree) NewFunction(fn FuncType, name string, ops NodeID) (NodeID, error) {
	id, n, err := t.alloc(NodeFunc)
	if err != nil {
		return NoNode, err
	}
	n.fn = fn
	n.name = name
	n.child = ops
	t.adopt(ops, id)
	return id, nil
}

func (t *Tree) NewSymbolRef(name string) (NodeID, error) {
	id, n, err := t.alloc(NodeSymbol)
	if err != nil {
		return NoNode, err
	}
	n.name = name
	return id, nil
}

// NewScope builds a let scope. The scope node owns syms, and both the body
// and every bound subtree get the scope as their parent, so bindings may refer
// to each other.
func (t *Tree) NewScope(syms *Symbol, body NodeID) (NodeID, error) {
	if body == NoNode {
		return NoNode, t.rep.Fatal("NULL body passed into scope!")
	}
	id, n, err := t.alloc(NodeScope)
	if err != nil {
		return NoNode, err
	}
	n.symbols = syms
	n.child = body
	t.adopt(body, id)
	for s := syms; s != nil; s = s.next {
		if v := t.get(s.Value); v != nil {
			v.parent = id
		}
	}
	return id, nil
}

func (t *Tree) NewCond(cond, tru, fls NodeID) (NodeID, error) {
	if cond == NoNode || tru == NoNode || fls == NoNode {
		return NoNode, t.rep.Fatal("NULL branch passed into cond!")
	}
	id, n, err := t.alloc(NodeCond)
	if err != nil {
		return NoNode, err
	}
	n.cond, n.tru, n.fls = cond, tru, fls
	for _, c := range []NodeID{cond, tru, fls} {
		t.nodes[c].parent = id
	}
	return id, nil
}

// Prepend makes expr the new head of list and returns it. Lists built this way
// are in reverse order of the Prepend calls.
func (t *Tree) Prepend(expr, list NodeID) NodeID {
	n := t.get(expr)
	if n == nil {
		return list
	}
	n.next = list
	return expr
}

func (t *Tree) Type(id NodeID) NodeType {
	return t.nodes[id].t
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

func (t *Tree) Next(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.next
	}
	return NoNode
}

// Symbols returns the bindings owned by a scope node.
func (t *Tree) Symbols(id NodeID) *Symbol {
	if n := t.get(id); n != nil {
		return n.symbols
	}
	return nil
}

// Free releases id, its following siblings and everything they own. parent
// links are never followed. Freeing NoNode or a released node does nothing.
func (t *Tree) Free(id NodeID) {
	for {
		n := t.get(id)
		if n == nil {
			return
		}
		next := n.next
		switch n.t {
		case NodeFunc:
			t.Free(n.child)
		case NodeScope:
			t.Free(n.child)
			t.freeSymbols(n.symbols)
		case NodeCond:
			t.Free(n.cond)
			t.Free(n.tru)
			t.Free(n.fls)
		}
		t.nodes[id] = node{}
		t.free = append(t.free, id)
		t.live--
		id = next
	}
}

func (t *Tree) freeSymbols(s *Symbol) {
	for s != nil {
		next := s.next
		t.Free(s.Value)
		*s = Symbol{}
		s = next
	}
}

// Format renders the node at id, without its siblings, as s-expression text.
func (t *Tree) Format(id NodeID) string {
	var buf bytes.Buffer
	t.format(&buf, id)
	return buf.String()
}

func (t *Tree) format(buf *bytes.Buffer, id NodeID) {
	n := t.get(id)
	if n == nil {
		buf.WriteString("nil")
		return
	}
	switch n.t {
	case NodeNumber:
		buf.WriteString(formatLiteral(n.num))
	case NodeSymbol:
		buf.WriteString(n.name)
	case NodeFunc:
		fmt.Fprintf(buf, "(%s", n.name)
		for c := n.child; c != NoNode; c = t.nodes[c].next {
			buf.WriteByte(' ')
			t.format(buf, c)
		}
		buf.WriteByte(')')
	case NodeCond:
		buf.WriteString("(cond ")
		t.format(buf, n.cond)
		buf.WriteByte(' ')
		t.format(buf, n.tru)
		buf.WriteByte(' ')
		t.format(buf, n.fls)
		buf.WriteByte(')')
	case NodeScope:
		// bindings are stored newest first
		var syms []*Symbol
		for s := n.symbols; s != nil; s = s.next {
			syms = append(syms, s)
		}
		buf.WriteString("((let")
		for i := len(syms) - 1; i >= 0; i-- {
			s := syms[i]
			buf.WriteString(" (")
			if s.Type != NoType {
				buf.WriteString(s.Type.String())
				buf.WriteByte(' ')
			}
			buf.WriteString(s.ID)
			buf.WriteByte(' ')
			t.format(buf, s.Value)
			buf.WriteByte(')')
		}
		buf.WriteString(") ")
		t.format(buf, n.child)
		buf.WriteByte(')')
	}
}

func formatLiteral(n Number) string {
	if n.Type == IntType {
		return strconv.FormatFloat(n.Value, 'f', 0, 64)
	}
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if !bytes.ContainsAny([]byte(s), ".NI") {
		s += ".0"
	}
	return s
}
