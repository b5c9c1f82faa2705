// Released under an MIT license. See LICENSE.

package balance

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"github.com/michaelmacinnis/balance/internal/matrix"
	"github.com/michaelmacinnis/balance/internal/type/num"
)

// System holds one conservation equation per element for a reaction with
// one unknown coefficient per compound.
type System struct {
	Symbols []string     // Sorted element symbols.
	Rows    [][]*big.Int // Simplified, distinct conservation equations.

	lhs []map[string]*big.Int
	rhs []map[string]*big.Int
}

// NewSystem builds the conservation equations for the atom counts of the
// reactants (lhs) and products (rhs). Each row holds the count of one
// element in every reactant, the negated count in every product, and a
// zero augmented column. Rows are divided by their greatest common divisor,
// signed so that their first non-zero value is positive, and duplicates are
// dropped.
func NewSystem(lhs, rhs []map[string]*big.Int) (*System, error) {
	reactants := symbols(lhs)
	products := symbols(rhs)

	if !reflect.DeepEqual(reactants, products) {
		return nil, mismatch(reactants, products)
	}

	s := &System{Symbols: reactants, lhs: lhs, rhs: rhs}

	n := len(lhs) + len(rhs)

	for _, sym := range s.Symbols {
		row := make([]*big.Int, 0, n+1)

		for _, c := range lhs {
			row = append(row, count(c, sym))
		}

		for _, c := range rhs {
			v := count(c, sym)
			row = append(row, v.Neg(v))
		}

		row = simplify(append(row, new(big.Int)))

		if !s.contains(row) {
			s.Rows = append(s.Rows, row)
		}
	}

	return s, nil
}

// Unknowns returns the number of compounds in the reaction.
func (s *System) Unknowns() int {
	return len(s.lhs) + len(s.rhs)
}

// Seed returns a square augmented matrix formed by appending the equations
// x[i] = 1 for i = start, start + 1, ... (wrapping) to the conservation
// equations. After each equation is appended only the last n rows are kept,
// where n is the number of unknowns. Seeding stops once the matrix is square.
func (s *System) Seed(start int) *matrix.T {
	n := s.Unknowns()

	rows := make([][]*big.Int, len(s.Rows), len(s.Rows)+1)
	copy(rows, s.Rows)

	for k := 0; k < n; k++ {
		seed := make([]*big.Int, n+1)
		for i := range seed {
			seed[i] = new(big.Int)
		}

		seed[(start+k)%n].SetInt64(1)
		seed[n].SetInt64(1)

		rows = append(rows, seed)
		if len(rows) > n {
			rows = rows[len(rows)-n:]
		}

		if len(rows) == n {
			break
		}
	}

	return matrix.New(rows)
}

// Verify returns an error wrapping ErrNotConserved if the coefficients do
// not produce the same number of atoms of every element on both sides.
func (s *System) Verify(coeffs []*big.Int) error {
	if len(coeffs) != s.Unknowns() {
		return fmt.Errorf("%w: %d coefficients for %d compounds",
			ErrNotConserved, len(coeffs), s.Unknowns())
	}

	for _, sym := range s.Symbols {
		left := total(sym, s.lhs, coeffs[:len(s.lhs)])
		right := total(sym, s.rhs, coeffs[len(s.lhs):])

		if left.Cmp(right) != 0 {
			return fmt.Errorf("%w: %s %s != %s", ErrNotConserved, sym, left, right)
		}
	}

	return nil
}

func (s *System) contains(row []*big.Int) bool {
	for _, r := range s.Rows {
		if equal(r, row) {
			return true
		}
	}

	return false
}

// count returns a copy of the count of sym in c, zero if it is absent.
func count(c map[string]*big.Int, sym string) *big.Int {
	n := new(big.Int)
	if v, ok := c[sym]; ok {
		n.Set(v)
	}

	return n
}

func difference(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}

	var d []string

	for _, s := range a {
		if !in[s] {
			d = append(d, s)
		}
	}

	return d
}

func equal(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

func mismatch(reactants, products []string) error {
	var msgs []string

	if d := difference(reactants, products); len(d) > 0 {
		msgs = append(msgs, strings.Join(d, ", ")+" only in reactants")
	}

	if d := difference(products, reactants); len(d) > 0 {
		msgs = append(msgs, strings.Join(d, ", ")+" only in products")
	}

	return fmt.Errorf("%w: %s", ErrElementMismatch, strings.Join(msgs, "; "))
}

func simplify(row []*big.Int) []*big.Int {
	g := num.GCD(row...)
	if g.Sign() == 0 {
		return row
	}

	for _, v := range row {
		if v.Sign() != 0 {
			if v.Sign() < 0 {
				g.Neg(g)
			}

			break
		}
	}

	for _, v := range row {
		v.Quo(v, g)
	}

	return row
}

func symbols(side []map[string]*big.Int) []string {
	seen := map[string]bool{}

	for _, c := range side {
		for s := range c {
			seen[s] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for s := range seen {
		keys = append(keys, s)
	}

	sort.Strings(keys)

	return keys
}

func total(sym string, side []map[string]*big.Int, coeffs []*big.Int) *big.Int {
	sum := new(big.Int)

	for i, c := range side {
		n := count(c, sym)
		sum.Add(sum, n.Mul(n, coeffs[i]))
	}

	return sum
}
