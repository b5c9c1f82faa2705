// Released under an MIT license. See LICENSE.

// Package equation provides the reactant and product sides of a reaction.
package equation

import (
	"math/big"
	"strings"

	"github.com/michaelmacinnis/balance/internal/type/compound"
)

// T (equation) holds the compounds on each side of a reaction.
type T struct {
	Reactants []*compound.T
	Products  []*compound.T
}

type equation = T

// New creates a new equation.
func New(reactants, products []*compound.T) *T {
	return &equation{Reactants: reactants, Products: products}
}

// Compounds returns the reactants followed by the products.
func (e *equation) Compounds() []*compound.T {
	c := make([]*compound.T, 0, len(e.Reactants)+len(e.Products))

	c = append(c, e.Reactants...)
	c = append(c, e.Products...)

	return c
}

// Counts returns the atom counts for each compound on each side.
func (e *equation) Counts() (lhs, rhs []map[string]*big.Int) {
	return counts(e.Reactants), counts(e.Products)
}

// String returns the equation with compounds separated by " + " and the
// sides separated by " -> ".
func (e *equation) String() string {
	return Join(texts(e.Reactants), texts(e.Products))
}

// Join joins the text of each side's compounds into a single equation.
func Join(lhs, rhs []string) string {
	return strings.Join(lhs, " + ") + " -> " + strings.Join(rhs, " + ")
}

func counts(side []*compound.T) []map[string]*big.Int {
	m := make([]map[string]*big.Int, len(side))
	for i, c := range side {
		m[i] = c.Atoms()
	}

	return m
}

func texts(side []*compound.T) []string {
	s := make([]string, len(side))
	for i, c := range side {
		s[i] = c.String()
	}

	return s
}
