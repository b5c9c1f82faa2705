// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for chemical equations.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/balance/internal/reader/token"
	"github.com/michaelmacinnis/balance/internal/type/compound"
	"github.com/michaelmacinnis/balance/internal/type/equation"
)

// ErrUnexpected is returned when the parser encounters a token that does
// not fit the grammar.
var ErrUnexpected = errors.New("parser: unexpected token")

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes tokens produced by item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes tokens until the end of the next equation. Blank lines are
// skipped. It returns nil, nil when there are no more tokens. On error, the
// remaining tokens on the line are discarded.
func (p *T) Parse() (e *equation.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = fmt.Errorf("%w: %s", ErrUnexpected, r)
		default:
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}

		e = nil

		p.discard()
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n') {
			p.consume()

			continue
		}

		e = p.equation()

		return e, nil
	}

	return nil, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) discard() {
	for t := p.peek(); t != nil; t = p.peek() {
		p.consume()

		if t.Is('\n') {
			return
		}
	}
}

func (p *T) expect(cs ...token.Class) *token.T {
	if p.peek().Is(cs...) {
		return p.consume()
	}

	// Make a nice error message.
	n := len(cs)
	e := make([]string, n-1)

	for i, c := range cs[:n-1] {
		e[i] = c.String()
	}

	l := cs[n-1].String()
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	l = strings.Join(e, ", ") + l

	p.unexpected("expected " + l + " got")

	return nil
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected(msg string) {
	t := p.peek()
	if t == nil {
		panic(fmt.Errorf("%w: %s end of input", ErrUnexpected, msg))
	}

	l := t.Source()
	x := strconv.Itoa(l.Char)
	y := strconv.Itoa(l.Line)

	panic(fmt.Errorf("%s:%s:%s: %w: %s %q",
		l.Name, y, x, ErrUnexpected, msg, t.Value()))
}

// T state functions.

// <equation> ::= <side> Arrow <side> ('\n' | EOF) .
func (p *T) equation() *equation.T {
	lhs := p.side()

	p.expect(token.Arrow)

	rhs := p.side()

	if p.peek() != nil {
		p.expect('\n')
	}

	return equation.New(lhs, rhs)
}

// <side> ::= <compound> ('+' <compound>)* .
func (p *T) side() []*compound.T {
	s := []*compound.T{p.compound()}

	for p.peek().Is('+') {
		p.consume()

		s = append(s, p.compound())
	}

	return s
}

// <compound> ::= Coefficient? <item>+ .
func (p *T) compound() *compound.T {
	if p.peek().Is(token.Coefficient) {
		p.consume()
	}

	var text strings.Builder

	nodes := p.items(&text)
	if len(nodes) == 0 {
		p.unexpected("expected Element or Open got")
	}

	return compound.New(text.String(), nodes...)
}

// <item> ::= Element | Open <item>+ Close .
func (p *T) items(text *strings.Builder) []compound.Node {
	var nodes []compound.Node

	for {
		t := p.peek()

		switch {
		case t.Is(token.Element):
			p.consume()

			text.WriteString(t.Value())

			nodes = append(nodes, compound.Element{
				Symbol: t.Symbol(),
				Count:  t.Count(),
			})
		case t.Is(token.Open):
			p.consume()

			text.WriteString(t.Value())

			children := p.items(text)
			if len(children) == 0 {
				p.unexpected("expected Element or Open got")
			}

			c := p.expect(token.Close)

			text.WriteString(c.Value())

			nodes = append(nodes, compound.Group{
				Nodes:      children,
				Multiplier: c.Count(),
			})
		default:
			return nodes
		}
	}
}
