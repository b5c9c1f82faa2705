// Released under an MIT license. See LICENSE.

// Package matrix provides an augmented matrix of exact rationals and a
// Gauss-Jordan solver that reduces its solution to whole numbers.
package matrix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/michaelmacinnis/balance/internal/type/num"
)

// T (matrix) is a matrix of exact rationals. The last column is the
// augmented column when the matrix is solved.
type T struct {
	cols int
	rows [][]*big.Rat
}

type matrix = T

// New creates a matrix from rows of integers. Every row must have the
// same length.
func New(rows [][]*big.Int) *T {
	m := &matrix{rows: make([][]*big.Rat, len(rows))}

	for i, row := range rows {
		if i == 0 {
			m.cols = len(row)
		} else if len(row) != m.cols {
			panic(fmt.Sprintf("row %d has %d columns, expected %d", i, len(row), m.cols))
		}

		m.rows[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			m.rows[i][j] = new(big.Rat).SetInt(v)
		}
	}

	return m
}

// At returns the value at row i, column j.
func (m *matrix) At(i, j int) *num.T {
	return num.Rat(new(big.Rat).Set(m.rows[i][j]))
}

// Cols returns the number of columns in the matrix m.
func (m *matrix) Cols() int {
	return m.cols
}

// Rows returns the number of rows in the matrix m.
func (m *matrix) Rows() int {
	return len(m.rows)
}

// String renders m as rows of integers, e.g. [[1, 0, -1, 0], [0, 1, 2, 1]].
// Non-integer values are truncated toward zero.
func (m *matrix) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, row := range m.rows {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteByte('[')

		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}

			b.WriteString(new(big.Int).Quo(v.Num(), v.Denom()).String())
		}

		b.WriteByte(']')
	}

	b.WriteByte(']')

	return b.String()
}

// Coefficients solves m and returns the smallest whole-number multiple of
// the solution. Every coefficient must be positive.
func (m *matrix) Coefficients() ([]*big.Int, error) {
	solved, err := m.Solve()
	if err != nil {
		return nil, err
	}

	coeffs := Integers(solved)

	for i, c := range coeffs {
		if c.Sign() <= 0 {
			return nil, fmt.Errorf("%w: x%d = %s", ErrNonPositive, i, c)
		}
	}

	return coeffs, nil
}

// Solve performs Gauss-Jordan elimination on a copy of the n x (n + 1)
// matrix m and returns the augmented column of the reduced result.
// A zero pivot is swapped with the first lower row that has a non-zero
// value in that column.
func (m *matrix) Solve() ([]*num.T, error) {
	n := len(m.rows)
	if n == 0 || m.cols != n+1 {
		return nil, fmt.Errorf("%w: %d x %d", ErrShape, n, m.cols)
	}

	a := m.clone()

	for i := 0; i < n; i++ {
		if a[i][i].Sign() == 0 {
			j := i + 1
			for j < n && a[j][i].Sign() == 0 {
				j++
			}

			if j == n {
				return nil, fmt.Errorf("%w: no pivot for x%d", ErrSingular, i)
			}

			a[i], a[j] = a[j], a[i]
		}

		pivot := new(big.Rat).Set(a[i][i])
		for k := range a[i] {
			a[i][k].Quo(a[i][k], pivot)
		}

		for j, row := range a {
			if j == i || row[i].Sign() == 0 {
				continue
			}

			f := new(big.Rat).Set(row[i])
			for k := range row {
				row[k].Sub(row[k], new(big.Rat).Mul(f, a[i][k]))
			}
		}
	}

	solved := make([]*num.T, n)
	for i, row := range a {
		solved[i] = num.Rat(row[n])
	}

	return solved, nil
}

// Integers converts a rational solution to integers. If any value is not
// an integer, every value is multiplied by the product of the denominators
// and the result is divided by its greatest common divisor.
func Integers(solved []*num.T) []*big.Int {
	fractional := false

	for _, s := range solved {
		if !s.IsInt() {
			fractional = true

			break
		}
	}

	ints := make([]*big.Int, len(solved))

	if !fractional {
		for i, s := range solved {
			ints[i] = new(big.Int).Set(s.Rat().Num())
		}

		return ints
	}

	product := big.NewInt(1)
	for _, s := range solved {
		product.Mul(product, s.Rat().Denom())
	}

	scale := new(big.Rat).SetInt(product)

	for i, s := range solved {
		v := new(big.Rat).Mul(s.Rat(), scale)
		ints[i] = new(big.Int).Set(v.Num())
	}

	if g := num.GCD(ints...); g.Sign() > 0 {
		for _, v := range ints {
			v.Quo(v, g)
		}
	}

	return ints
}

func (m *matrix) clone() [][]*big.Rat {
	a := make([][]*big.Rat, len(m.rows))

	for i, row := range m.rows {
		a[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			a[i][j] = new(big.Rat).Set(v)
		}
	}

	return a
}
