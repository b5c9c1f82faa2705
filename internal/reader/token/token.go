// Released under an MIT license. See LICENSE.

// Package token is shared by the equation lexer and parser.
package token

import (
	"math/big"
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/balance/internal/type/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// Token classes. Plus is represented by the rune '+'.
const (
	Error Class = iota

	Arrow Class = unicode.MaxRune + iota
	Close
	Coefficient
	Element
	Open
)

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Arrow:
		return "Arrow"
	case Close:
		return "Close"
	case Coefficient:
		return "Coefficient"
	case Element:
		return "Element"
	case Open:
		return "Open"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}

// Symbol returns the element symbol of an Element token or "" for any
// other class.
func (t *token) Symbol() string {
	if !t.Is(Element) {
		return ""
	}

	return t.value[:digits(t.value)]
}

// Count returns the numeric part of an Element, Close or Coefficient
// token. Element and Close tokens without digits count as 1.
func (t *token) Count() *big.Int {
	s := t.value[digits(t.value):]
	if t.Is(Coefficient) {
		s = t.value
	}

	if s == "" {
		return big.NewInt(1)
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("'" + s + "' is not a valid count")
	}

	return n
}

// digits returns the index of the first trailing digit in s.
func digits(s string) int {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}

	return i
}
