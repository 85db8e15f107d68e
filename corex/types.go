package corex

import "errors"

// Sentinel errors returned by this package; match with errors.Is.
var (
	// ErrBadOptions indicates a nonsensical configuration (see Options).
	ErrBadOptions = errors.New("corex: invalid options")

	// ErrNotFitted indicates Transform or a statistic was requested before Fit.
	ErrNotFitted = errors.New("corex: model is not fitted")

	// ErrDimensionMismatch indicates data whose width differs from the
	// matrix the extractor was fitted on.
	ErrDimensionMismatch = errors.New("corex: variable count differs from fitted data")
)

// Default configuration values; see Options for semantics.
const (
	// DefaultDim is the default factor cardinality.
	DefaultDim = 2

	// DefaultMaxIter caps the EM iterations of a single restart.
	DefaultMaxIter = 100

	// DefaultRestarts is the number of independently seeded runs to try.
	DefaultRestarts = 3

	// DefaultSeed seeds the label initializer when the caller does not care.
	DefaultSeed = 1

	// smoothing is the additive pseudo-count applied to every estimated
	// probability table. Small enough to keep assignments sharp.
	smoothing = 0.1
)

// Options configures a factor extraction.
//
// Fields:
//   - Dim      — cardinality of the learned factor (≥ 2).
//   - MaxIter  — iteration cap per restart (≥ 1).
//   - Tol      — convergence tolerance: the run stops once the fraction of
//     samples changing label in one sweep is ≤ Tol. 0 demands a
//     fixed point.
//   - Restarts — independently seeded runs; the best by TC wins (≥ 1).
//   - Seed     — base seed; restart r uses Seed+r. Fixing it makes the whole
//     fit reproducible.
type Options struct {
	Dim      int
	MaxIter  int
	Tol      float64
	Restarts int
	Seed     int64
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Dim:      DefaultDim,
		MaxIter:  DefaultMaxIter,
		Tol:      0,
		Restarts: DefaultRestarts,
		Seed:     DefaultSeed,
	}
}

// validate reports ErrBadOptions for out-of-range fields.
func (o Options) validate() error {
	if o.Dim < 2 || o.MaxIter < 1 || o.Tol < 0 || o.Restarts < 1 {
		return ErrBadOptions
	}
	return nil
}
