// Released under an MIT license. See LICENSE.

package balance

import (
	"github.com/michaelmacinnis/balance/internal/matrix"
)

// Option configures Balance and Coefficients.
type Option func(*options)

type options struct {
	compact bool
	retry   bool
	trace   func(*matrix.T)
}

// WithCompact prefixes coefficients without a space ("2H2O").
func WithCompact() Option {
	return func(o *options) {
		o.compact = true
	}
}

// WithRetry seeds a different unknown when the first seeded system is
// singular or yields coefficients that are not positive or do not conserve
// atoms. Without it only x[0] = 1 (and following unknowns as needed) is
// tried.
func WithRetry() Option {
	return func(o *options) {
		o.retry = true
	}
}

// WithTrace calls f with each seeded matrix before it is solved.
func WithTrace(f func(*matrix.T)) Option {
	return func(o *options) {
		o.trace = f
	}
}

func gather(opts []Option) *options {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
