package sieve

import (
	"github.com/katalvlaran/infosieve/corex"
	"github.com/katalvlaran/infosieve/discrete"
	"github.com/katalvlaran/infosieve/remainder"
)

// FactorExtractor is the contract a layer's factor learner must satisfy.
// Package corex provides the default implementation.
type FactorExtractor interface {
	// Fit learns one categorical factor from x (negative cells = missing).
	Fit(x discrete.Matrix) error
	// Labels returns the training labels, one per sample, after Fit.
	Labels() []int
	// Transform applies the fitted factor to new data of the same width.
	Transform(x discrete.Matrix) ([]int, error)
	// TC returns the factor's total-correlation estimate.
	TC() float64
	// MIs returns per-variable mutual-information estimates I(X_i;Y).
	MIs() []float64
}

// RemainderModel is the contract a per-variable residual model must satisfy.
// Package remainder provides the default implementation.
type RemainderModel interface {
	// Transform codes each (value, label) pair into a residual code.
	Transform(xs, ys []int) ([]int, error)
	// Predict inverts Transform, recovering a value from (label, code).
	Predict(ys, zs []int) ([]int, error)
	// MI is the model's lower-bound contribution (residual/label leakage).
	MI() float64
	// H is the model's entropy; doubled, the upper-bound contribution.
	H() float64
	// Cardinality reports the learned residual cardinality. Diagnostic only.
	Cardinality() int
}

// ExtractorFactory builds a fresh, unfitted factor extractor per layer.
type ExtractorFactory func(opts corex.Options) FactorExtractor

// RemainderFactory builds a fitted residual model from one variable's
// non-missing values, the matching labels, and the cardinality bound.
type RemainderFactory func(xs, ys []int, kMax int) (RemainderModel, error)

// Status reports how fitting terminated. Both terminal states are success.
type Status int

const (
	// StatusUnfitted — Fit has not run (or accepted no layer yet).
	StatusUnfitted Status = iota

	// StatusConverged — growth stopped because a candidate layer failed the
	// acceptance test: no information left above the noise floor.
	StatusConverged

	// StatusMaxLayers — growth stopped at the configured layer cap.
	StatusMaxLayers
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxLayers:
		return "max-layers-reached"
	default:
		return "unfitted"
	}
}

// Default configuration values; see Options for semantics.
const (
	// DefaultMaxLayers caps the number of accepted layers.
	DefaultMaxLayers = 10

	// DefaultKMax bounds every residual model's code cardinality.
	DefaultKMax = 2
)

// Options configures a Sieve.
//
// Fields:
//   - MaxLayers    — upper limit on accepted layers (≥ 1).
//   - KMax         — residual-code cardinality bound handed to every
//     remainder model (≥ 1).
//   - CorEx        — configuration forwarded to each layer's factor
//     extractor. With the default factory this is corex.Options
//     verbatim; custom factories may interpret it freely.
//   - NewExtractor — optional substitute factory; nil selects corex.New.
//   - NewRemainder — optional substitute factory; nil selects remainder.New.
type Options struct {
	MaxLayers    int
	KMax         int
	CorEx        corex.Options
	NewExtractor ExtractorFactory
	NewRemainder RemainderFactory
}

// DefaultOptions returns the documented default configuration with the
// built-in extractor and remainder models.
func DefaultOptions() Options {
	return Options{
		MaxLayers: DefaultMaxLayers,
		KMax:      DefaultKMax,
		CorEx:     corex.DefaultOptions(),
	}
}

// validate reports ErrBadOptions for out-of-range fields.
func (o Options) validate() error {
	if o.MaxLayers < 1 || o.KMax < 1 {
		return ErrBadOptions
	}
	return nil
}

// newExtractor resolves the extractor factory, defaulting to corex.
func (o Options) newExtractor() FactorExtractor {
	if o.NewExtractor != nil {
		return o.NewExtractor(o.CorEx)
	}
	return corex.New(o.CorEx)
}

// newRemainder resolves the remainder factory, defaulting to remainder.New.
func (o Options) newRemainder(xs, ys []int, kMax int) (RemainderModel, error) {
	if o.NewRemainder != nil {
		return o.NewRemainder(xs, ys, kMax)
	}
	return remainder.New(xs, ys, kMax)
}
