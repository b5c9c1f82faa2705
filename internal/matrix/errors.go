// Released under an MIT license. See LICENSE.

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Callers match with errors.Is.
var (
	// ErrShape is returned when a matrix to be solved is not n x (n + 1).
	ErrShape = errors.New("matrix: matrix is not n x (n + 1)")

	// ErrSingular is returned when no non-zero pivot can be found for a
	// column. The system has no unique solution.
	ErrSingular = errors.New("matrix: system cannot be solved")

	// ErrNonPositive is returned when a coefficient in the solution is
	// zero or negative.
	ErrNonPositive = errors.New("matrix: a resulting coefficient returned zero or negative")
)
