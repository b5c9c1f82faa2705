// Released under an MIT license. See LICENSE.

// Package balance balances chemical equations.
//
// An equation such as "H2 + O2 -> H2O" is validated, parsed, and turned into
// one conservation equation per element. The conservation equations only
// determine the coefficients up to a common factor so one or more seed
// equations of the form x[i] = 1 are added to make the system square. The
// system is solved exactly over the rationals and the solution is scaled to
// the smallest positive whole numbers, giving "2 H2 + O2 -> 2 H2O".
package balance

import (
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/balance/internal/reader/lexer"
	"github.com/michaelmacinnis/balance/internal/reader/parser"
	"github.com/michaelmacinnis/balance/internal/reader/validate"
	"github.com/michaelmacinnis/balance/internal/type/equation"
)

// Balance returns the equation s with the smallest positive whole-number
// coefficients that conserve every element. Coefficients of 1 are omitted.
func Balance(s string, opts ...Option) (string, error) {
	o := gather(opts)

	e, coeffs, err := solve(s, o)
	if err != nil {
		return "", err
	}

	return Stitch(e, coeffs, o.compact), nil
}

// Coefficients returns the balanced coefficients for each compound in the
// equation s, reactants first.
func Coefficients(s string, opts ...Option) ([]*big.Int, error) {
	_, coeffs, err := solve(s, gather(opts))

	return coeffs, err
}

// Parse validates and parses the equation s. Whitespace is removed before
// scanning so "H 2O" is the same compound as "H2O".
func Parse(s string) (*equation.T, error) {
	if err := validate.Equation(s); err != nil {
		return nil, err
	}

	l := lexer.New("equation")

	l.Scan(validate.Strip(s) + "\n")

	e, err := parser.New(l.Token).Parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	if e == nil {
		return nil, fmt.Errorf("%w: empty equation", ErrSyntax)
	}

	return e, nil
}

// Stitch writes each coefficient in front of its compound. Coefficients of
// 1 are omitted. Unless compact is true, a space separates the coefficient
// from the formula.
func Stitch(e *equation.T, coeffs []*big.Int, compact bool) string {
	sep := " "
	if compact {
		sep = ""
	}

	texts := make([]string, 0, len(coeffs))

	for i, c := range e.Compounds() {
		t := c.String()
		if coeffs[i].Cmp(big.NewInt(1)) != 0 {
			t = coeffs[i].String() + sep + t
		}

		texts = append(texts, t)
	}

	n := len(e.Reactants)

	return equation.Join(texts[:n], texts[n:])
}

func solve(s string, o *options) (*equation.T, []*big.Int, error) {
	e, err := Parse(s)
	if err != nil {
		return nil, nil, err
	}

	sys, err := NewSystem(e.Counts())
	if err != nil {
		return nil, nil, err
	}

	tries := 1
	if o.retry {
		tries = sys.Unknowns()
	}

	var first error

	for start := 0; start < tries; start++ {
		m := sys.Seed(start)

		if o.trace != nil {
			o.trace(m)
		}

		coeffs, err := m.Coefficients()
		if err == nil {
			err = sys.Verify(coeffs)
		}

		if err == nil {
			return e, coeffs, nil
		}

		if first == nil {
			first = err
		}
	}

	return nil, nil, first
}
