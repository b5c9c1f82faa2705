// Released under an MIT license. See LICENSE.

// Package validate checks the shape of an equation before it is parsed.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"
)

// ErrSyntax is returned for any equation that does not match the grammar.
var ErrSyntax = errors.New("invalid unbalanced chemical equation")

// A compound is an optional coefficient followed by one or more elements
// or parenthesized groups of elements with a repeat count.
var compound = regexp.MustCompile( //nolint:gochecknoglobals
	`^\d*(?:[A-Z][a-z]*\d*|\((?:[A-Z][a-z]*\d*)+\)\d+)+$`,
)

// Equation returns an error wrapping ErrSyntax if s is not of the form
// compound (+ compound)* -> compound (+ compound)*. Whitespace is ignored.
func Equation(s string) error {
	s = Strip(s)

	sides := strings.Split(s, "->")
	if n := len(sides) - 1; n != 1 {
		return fmt.Errorf("%w: expected 1 arrow, found %s",
			ErrSyntax, Count(n, "arrow", "s"))
	}

	for _, side := range sides {
		for _, segment := range strings.Split(side, "+") {
			if !compound.MatchString(segment) {
				return fmt.Errorf("%w: %s",
					ErrSyntax, adapted.CanonicalString(segment))
			}
		}
	}

	return nil
}

// Strip removes all whitespace from s.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
