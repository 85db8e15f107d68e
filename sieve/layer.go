package sieve

import "github.com/katalvlaran/infosieve/discrete"

// Layer is one round of the sieve: a fitted factor extractor plus one fitted
// residual model per input column. The number of residual models always
// equals the full width of the layer's input, so a deeper layer also
// carries a model for the label column appended by the layer above it.
//
// Layers are created by Sieve.Fit and immutable afterwards.
type Layer struct {
	extractor  FactorExtractor
	labels     []int // training labels, one per sample
	remainders []RemainderModel
}

// newLayer fits a candidate layer on x: runs the factor extractor, then fits
// one residual model per column on that column's non-missing rows.
func newLayer(x discrete.Matrix, opts Options) (*Layer, error) {
	ext := opts.newExtractor()
	if err := ext.Fit(x); err != nil {
		return nil, err
	}
	labels := ext.Labels()

	l := &Layer{
		extractor:  ext,
		labels:     labels,
		remainders: make([]RemainderModel, x.Cols()),
	}
	for j := range l.remainders {
		col, err := x.Column(j)
		if err != nil {
			return nil, err
		}
		xs := make([]int, 0, len(col))
		ys := make([]int, 0, len(col))
		for i, v := range col {
			if v >= 0 {
				xs = append(xs, v)
				ys = append(ys, labels[i])
			}
		}
		rem, err := opts.newRemainder(xs, ys, opts.KMax)
		if err != nil {
			return nil, err
		}
		l.remainders[j] = rem
	}
	return l, nil
}

// Width returns the layer's input width (= number of residual models).
func (l *Layer) Width() int { return len(l.remainders) }

// Remainders returns the layer's residual models, one per input column.
// The slice is a copy; the models are shared and immutable.
func (l *Layer) Remainders() []RemainderModel {
	out := make([]RemainderModel, len(l.remainders))
	copy(out, l.remainders)
	return out
}

// TC returns the layer factor's total-correlation estimate.
func (l *Layer) TC() float64 { return l.extractor.TC() }

// LB returns the layer's lower bound on explained total correlation: the sum
// of its residual models' leakage terms.
func (l *Layer) LB() float64 {
	sum := 0.0
	for _, r := range l.remainders {
		sum += r.MI()
	}
	return sum
}

// UB returns the layer's upper bound on explained total correlation: twice
// the sum of its residual models' entropies. UB ≥ LB for well-behaved
// residual models.
func (l *Layer) UB() float64 {
	sum := 0.0
	for _, r := range l.remainders {
		sum += 2 * r.H()
	}
	return sum
}

// Transform re-encodes x through this layer: residual codes for every
// column, with the layer label appended as the last column.
// Output width = input width + 1.
func (l *Layer) Transform(x discrete.Matrix) (discrete.Matrix, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if x.Cols() != l.Width() {
		return nil, ErrDimensionMismatch
	}
	labels, err := l.extractor.Transform(x)
	if err != nil {
		return nil, err
	}
	out := make(discrete.Matrix, x.Rows())
	w := x.Cols()
	for i := range out {
		out[i] = make([]int, w+1)
		out[i][w] = labels[i]
	}
	for j := 0; j < w; j++ {
		col, err := x.Column(j)
		if err != nil {
			return nil, err
		}
		zs, err := l.remainders[j].Transform(col, labels)
		if err != nil {
			return nil, err
		}
		for i, z := range zs {
			out[i][j] = z
		}
	}
	return out, nil
}

// Invert recovers the layer's input from its output: the trailing label
// column is consumed, and every other column is predicted from (label,
// residual code). Output width = input width − 1.
func (l *Layer) Invert(xr discrete.Matrix) (discrete.Matrix, error) {
	if err := xr.Validate(); err != nil {
		return nil, err
	}
	if xr.Cols() != l.Width()+1 {
		return nil, ErrDimensionMismatch
	}
	ys, err := xr.Column(xr.Cols() - 1)
	if err != nil {
		return nil, err
	}
	w := xr.Cols() - 1
	out := make(discrete.Matrix, xr.Rows())
	for i := range out {
		out[i] = make([]int, w)
	}
	for j := 0; j < w; j++ {
		zs, err := xr.Column(j)
		if err != nil {
			return nil, err
		}
		xs, err := l.remainders[j].Predict(ys, zs)
		if err != nil {
			return nil, err
		}
		for i, v := range xs {
			out[i][j] = v
		}
	}
	return out, nil
}
