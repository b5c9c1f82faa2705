// Released under an MIT license. See LICENSE.

// Package num provides the exact rational number type used by the solver.
package num

import (
	"math/big"
)

// T (number) wraps Go's big.Rat type.
type T big.Rat

// New creates a new number from a string.
func New(s string) *T {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		panic("'" + s + "' is not a valid number")
	}

	return Rat(v)
}

// Int creates a number from the integer i.
func Int(i int64) *T {
	return Rat(big.NewRat(i, 1))
}

// Rat wraps the *big.Rat r as a number.
func Rat(r *big.Rat) *T {
	return (*T)(r)
}

// Equal returns true if m is the same number as the number n.
func (n *T) Equal(m *T) bool {
	return n.Rat().Cmp(m.Rat()) == 0
}

// IsInt returns true if the denominator of the number n is 1.
func (n *T) IsInt() bool {
	return n.Rat().IsInt()
}

// IsZero returns true if the number n is zero.
func (n *T) IsZero() bool {
	return n.Rat().Sign() == 0
}

// Rat returns the value of the number n as a *big.Rat.
func (n *T) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the number n.
func (n *T) String() string {
	return n.Rat().RatString()
}

// GCD returns the greatest common divisor of the absolute values of xs.
// It returns zero if xs is empty or every value is zero.
func GCD(xs ...*big.Int) *big.Int {
	g := new(big.Int)

	for _, x := range xs {
		g.GCD(nil, nil, g, new(big.Int).Abs(x))
	}

	return g
}
