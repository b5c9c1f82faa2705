// Released under an MIT license. See LICENSE.

// Package compound provides the parse tree for a chemical formula.
package compound

import (
	"math/big"
	"sort"
	"strings"
)

// Node is an Element or a Group.
type Node interface {
	flatten(multiplier *big.Int) []Element
	String() string
}

// Element is an element symbol with a subscript.
type Element struct {
	Symbol string
	Count  *big.Int
}

// Group is a parenthesized list of nodes with a repeat count.
type Group struct {
	Nodes      []Node
	Multiplier *big.Int
}

// T (compound) is a chemical formula and its parse tree.
type T struct {
	nodes []Node
	text  string
}

type compound = T

// New creates a new compound from its text and nodes. If text is empty,
// it is rendered from the nodes.
func New(text string, nodes ...Node) *T {
	if text == "" {
		var b strings.Builder

		for _, n := range nodes {
			b.WriteString(n.String())
		}

		text = b.String()
	}

	return &compound{nodes: nodes, text: text}
}

// Atoms returns the number of atoms of each element in the compound c.
// Counts for a symbol that appears more than once are summed. Symbols
// with a total count of zero are omitted.
func (c *compound) Atoms() map[string]*big.Int {
	atoms := map[string]*big.Int{}

	for _, e := range Flatten(c.nodes) {
		n, ok := atoms[e.Symbol]
		if !ok {
			n = new(big.Int)
			atoms[e.Symbol] = n
		}

		n.Add(n, e.Count)
	}

	for s, n := range atoms {
		if n.Sign() == 0 {
			delete(atoms, s)
		}
	}

	return atoms
}

// Nodes returns the top-level nodes of the compound c.
func (c *compound) Nodes() []Node {
	return c.nodes
}

// String returns the formula text of the compound c.
func (c *compound) String() string {
	return c.text
}

// Symbols returns the sorted element symbols present in the compound c.
func (c *compound) Symbols() []string {
	atoms := c.Atoms()

	s := make([]string, 0, len(atoms))
	for k := range atoms {
		s = append(s, k)
	}

	sort.Strings(s)

	return s
}

// Flatten expands groups, innermost first, into a new list of elements
// with each count multiplied by the enclosing groups' multipliers.
func Flatten(nodes []Node) []Element {
	var elements []Element

	for _, n := range nodes {
		elements = append(elements, n.flatten(big.NewInt(1))...)
	}

	return elements
}

func (e Element) flatten(multiplier *big.Int) []Element {
	return []Element{{Symbol: e.Symbol, Count: new(big.Int).Mul(e.Count, multiplier)}}
}

// String returns the element as it would be written in a formula.
func (e Element) String() string {
	if isOne(e.Count) {
		return e.Symbol
	}

	return e.Symbol + e.Count.String()
}

func (g Group) flatten(multiplier *big.Int) []Element {
	var elements []Element

	for _, n := range g.Nodes {
		elements = append(elements, n.flatten(new(big.Int).Mul(g.Multiplier, multiplier))...)
	}

	return elements
}

// String returns the group as it would be written in a formula.
func (g Group) String() string {
	var b strings.Builder

	b.WriteByte('(')

	for _, n := range g.Nodes {
		b.WriteString(n.String())
	}

	b.WriteByte(')')

	if !isOne(g.Multiplier) {
		b.WriteString(g.Multiplier.String())
	}

	return b.String()
}

func isOne(n *big.Int) bool {
	return n.IsInt64() && n.Int64() == 1
}
