// Released under an MIT license. See LICENSE.

package balance

import (
	"errors"

	"github.com/michaelmacinnis/balance/internal/matrix"
	"github.com/michaelmacinnis/balance/internal/reader/validate"
)

// Errors returned by Balance and Coefficients. Match them with errors.Is.
var (
	// ErrSyntax is returned when the equation does not match the grammar.
	ErrSyntax = validate.ErrSyntax

	// ErrElementMismatch is returned when an element appears on only one
	// side of the equation.
	ErrElementMismatch = errors.New("balance: element missing on side")

	// ErrNotConserved is returned when the solved coefficients do not
	// conserve the atoms of every element.
	ErrNotConserved = errors.New("balance: coefficients do not conserve atoms")

	// ErrSingular is returned when the seeded system has no unique solution.
	ErrSingular = matrix.ErrSingular

	// ErrNonPositive is returned when a solved coefficient is zero or negative.
	ErrNonPositive = matrix.ErrNonPositive
)
