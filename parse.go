package cilisp

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var (
	EOF = errors.New("unexpected end of file")
)

// Parser reads s-expressions and builds them bottom up in a Tree.
type Parser struct {
	buf  *bufio.Reader
	pos  int
	tree *Tree
}

func NewParser(r io.Reader, tree *Tree) *Parser {
	return &Parser{
		buf:  bufio.NewReader(r),
		tree: tree,
	}
}

func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if r == ';' {
			for {
				r, err = p.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

func isSymbolLetter(r rune) bool {
	return strings.ContainsRune(`+-*/<>=&%?.@_#$:`, r)
}

func isTokenLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isSymbolLetter(r)
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	p.pos -= 1
	return err
}

func (p *Parser) peek() (rune, error) {
	r, err := p.readRune()
	if err != nil {
		return 0, err
	}
	p.unreadRune()
	return r, nil
}

func (p *Parser) readToken() (string, error) {
	p.SkipWhite()
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if !isTokenLetter(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	if buf.Len() == 0 {
		r, err := p.peek()
		if err != nil {
			return "", EOF
		}
		return "", fmt.Errorf("invalid token: '%c' (%d)", r, p.Pos())
	}
	return buf.String(), nil
}

func (p *Parser) expect(want rune) error {
	p.SkipWhite()
	r, err := p.readRune()
	if err != nil {
		return EOF
	}
	if r != want {
		return fmt.Errorf("expected '%c' but got '%c' (%d)", want, r, p.Pos())
	}
	return nil
}

func isNumber(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s != "" && s[0] == '.' {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// ParsePrimitive reads a number or a symbol reference.
func (p *Parser) ParsePrimitive() (NodeID, error) {
	s, err := p.readToken()
	if err != nil {
		return NoNode, err
	}
	if isNumber(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return p.tree.NewNumber(Int(float64(i)))
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return p.tree.NewNumber(Double(f))
		}
		return NoNode, fmt.Errorf("invalid number: %s (%d)", s, p.Pos())
	}
	return p.tree.NewSymbolRef(s)
}

// ParseAny reads one s-expression.
func (p *Parser) ParseAny() (NodeID, error) {
	p.SkipWhite()
	r, err := p.readRune()
	if err != nil {
		return NoNode, EOF
	}

	if r == '(' {
		return p.ParseParen()
	}
	if isTokenLetter(r) {
		p.unreadRune()
		return p.ParsePrimitive()
	}
	return NoNode, fmt.Errorf("invalid token: '%c' (%d)", r, p.Pos())
}

// ParseParen reads the rest of a parenthesized form whose '(' was consumed.
func (p *Parser) ParseParen() (NodeID, error) {
	p.SkipWhite()
	r, err := p.peek()
	if err != nil {
		return NoNode, EOF
	}
	if r == '(' {
		p.readRune()
		return p.ParseScope()
	}

	name, err := p.readToken()
	if err != nil {
		return NoNode, err
	}
	if isNumber(name) {
		return NoNode, fmt.Errorf("invalid function name: %s (%d)", name, p.Pos())
	}
	if name == "cond" {
		return p.ParseCond()
	}

	var args []NodeID
	for {
		p.SkipWhite()
		r, err := p.peek()
		if err != nil {
			p.discard(args...)
			return NoNode, EOF
		}
		if r == ')' {
			p.readRune()
			break
		}
		arg, err := p.ParseAny()
		if err != nil {
			p.discard(args...)
			return NoNode, err
		}
		args = append(args, arg)
	}

	// prepend from the back so operands keep their written order
	list := NoNode
	for i := len(args) - 1; i >= 0; i-- {
		list = p.tree.Prepend(args[i], list)
	}
	id, err := p.tree.NewFunction(ResolveFunc(name), name, list)
	if err != nil {
		p.tree.Free(list)
		return NoNode, err
	}
	return id, nil
}

// ParseCond reads "s_expr s_expr s_expr)" after the cond keyword.
func (p *Parser) ParseCond() (NodeID, error) {
	var parts [3]NodeID
	for i := range parts {
		id, err := p.ParseAny()
		if err != nil {
			p.discard(parts[:i]...)
			return NoNode, err
		}
		parts[i] = id
	}
	if err := p.expect(')'); err != nil {
		p.discard(parts[:]...)
		return NoNode, err
	}
	id, err := p.tree.NewCond(parts[0], parts[1], parts[2])
	if err != nil {
		p.discard(parts[:]...)
		return NoNode, err
	}
	return id, nil
}

// ParseScope reads "let let_elem+) s_expr)" after the two opening parens of
// a scope.
func (p *Parser) ParseScope() (NodeID, error) {
	kw, err := p.readToken()
	if err != nil {
		return NoNode, err
	}
	if kw != "let" {
		return NoNode, fmt.Errorf("expected let but got %s (%d)", kw, p.Pos())
	}

	var syms *Symbol
	fail := func(err error) (NodeID, error) {
		p.tree.freeSymbols(syms)
		return NoNode, err
	}
	for {
		p.SkipWhite()
		r, err := p.peek()
		if err != nil {
			return fail(EOF)
		}
		if r == ')' {
			p.readRune()
			break
		}
		sym, err := p.ParseLetElem()
		if err != nil {
			return fail(err)
		}
		syms = p.tree.Bind(sym, syms)
	}
	if syms == nil {
		return fail(fmt.Errorf("empty let (%d)", p.Pos()))
	}

	body, err := p.ParseAny()
	if err != nil {
		return fail(err)
	}
	if err := p.expect(')'); err != nil {
		p.tree.Free(body)
		return fail(err)
	}
	id, err := p.tree.NewScope(syms, body)
	if err != nil {
		p.tree.Free(body)
		return fail(err)
	}
	return id, nil
}

// ParseLetElem reads "([type] symbol s_expr)".
func (p *Parser) ParseLetElem() (*Symbol, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	name, err := p.readToken()
	if err != nil {
		return nil, err
	}
	typ := ResolveType(name)
	if typ != NoType {
		name, err = p.readToken()
		if err != nil {
			return nil, err
		}
	}
	if isNumber(name) {
		return nil, fmt.Errorf("invalid symbol name: %s (%d)", name, p.Pos())
	}
	val, err := p.ParseAny()
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		p.tree.Free(val)
		return nil, err
	}
	return p.tree.NewSymbol(typ, name, val), nil
}

func (p *Parser) discard(ids ...NodeID) {
	for _, id := range ids {
		p.tree.Free(id)
	}
}

// ParseExpr reads the next top level expression. It returns io.EOF when the
// input is exhausted.
func (p *Parser) ParseExpr() (NodeID, error) {
	p.SkipWhite()
	if _, err := p.peek(); err != nil {
		if err == io.EOF {
			return NoNode, io.EOF
		}
		return NoNode, err
	}
	return p.ParseAny()
}

// Parse reads every top level expression. The returned ids are independent
// roots.
func (p *Parser) Parse() ([]NodeID, error) {
	var roots []NodeID
	for {
		id, err := p.ParseExpr()
		if err == io.EOF {
			return roots, nil
		}
		if err != nil {
			p.discard(roots...)
			return nil, err
		}
		roots = append(roots, id)
	}
}
