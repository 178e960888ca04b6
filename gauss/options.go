// Package gauss: functional configuration for trace rendering.
//
// Design goals (shared across the module):
//   - Deterministic behavior: no global state, documented defaults.
//   - No dead switches: each option impacts behavior and is covered by
//     tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user-triggered conditions return errors elsewhere.

package gauss

// DefaultPrecision is the number of decimal places used when a step
// description renders an approximate (rounded) value, as the elementwise
// engines do. Exact values in descriptions are never rounded.
const DefaultPrecision = 2

// Option configures a step-producing engine call.
type Option func(*options)

// options is the internal, gathered configuration state.
type options struct {
	precision int // decimal places for approximate renderings
}

// defaultOptions returns the documented default configuration.
func defaultOptions() options {
	return options{precision: DefaultPrecision}
}

// gatherOptions folds the provided options over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPrecision sets the number of decimal places used for approximate
// values in step descriptions. Panics if decimals is negative — that is
// a programmer error, not an input condition.
func WithPrecision(decimals int) Option {
	if decimals < 0 {
		panic("gauss: WithPrecision requires decimals >= 0")
	}

	return func(o *options) { o.precision = decimals }
}
