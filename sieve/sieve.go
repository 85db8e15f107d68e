package sieve

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/infosieve/discrete"
)

// Sieve owns an ordered, append-only stack of Layers and the aggregate
// statistics needed for prediction. Construct with New, then Fit.
type Sieve struct {
	opts   Options
	status Status

	layers    []*Layer
	nVars     int     // original variable count
	origCards []int   // observed cardinality per original variable at fit time
	xStats    [][]int // per original variable: histogram of its current residual codes
}

// New returns an unfitted Sieve with the given options. Use DefaultOptions
// as a starting point.
func New(opts Options) *Sieve { return &Sieve{opts: opts} }

// Fit grows the layer stack greedily on x. Each round fits a candidate layer
// on the current working matrix and accepts it iff
//
//	tc − lb > 1/n_samples
//
// i.e. the factor's total-correlation estimate clears the layer's residual
// leakage by more than the sampling-noise floor. On acceptance the working
// matrix becomes the layer's output and the per-variable residual histograms
// are recomputed; on rejection the candidate is discarded and growth stops.
//
// Fit terminates in StatusConverged (rejection) or StatusMaxLayers (cap
// reached); both are successful. Refitting resets all previous state.
func (s *Sieve) Fit(x discrete.Matrix) error {
	if err := s.opts.validate(); err != nil {
		return err
	}
	if err := x.Validate(); err != nil {
		return err
	}

	s.layers = nil
	s.status = StatusUnfitted
	s.nVars = x.Cols()
	s.origCards = make([]int, s.nVars)
	for j := 0; j < s.nVars; j++ {
		col, _ := x.Column(j)
		s.origCards[j] = discrete.Cardinality(col)
	}
	s.xStats = nil

	n := float64(x.Rows())
	working := x.Clone()

	for len(s.layers) < s.opts.MaxLayers {
		depth := len(s.layers)
		candidate, err := newLayer(working, s.opts)
		if err != nil {
			return fmt.Errorf("sieve: fitting layer %d: %w", depth, err)
		}
		next, err := candidate.Transform(working)
		if err != nil {
			return fmt.Errorf("sieve: transforming through layer %d: %w", depth, err)
		}

		gain := candidate.TC() - candidate.LB()
		accepted := gain > 1/n
		log.Debug().
			Int("layer", depth).
			Float64("tc", candidate.TC()).
			Float64("lb", candidate.LB()).
			Float64("ub", candidate.UB()).
			Bool("accepted", accepted).
			Msg("sieve: candidate layer")

		if !accepted {
			s.status = StatusConverged
			return nil
		}

		s.layers = append(s.layers, candidate)
		working = next
		s.xStats = make([][]int, s.nVars)
		for j := 0; j < s.nVars; j++ {
			col, _ := working.Column(j)
			s.xStats[j] = discrete.Bincount(col)
		}
	}

	s.status = StatusMaxLayers
	return nil
}

// Transform pushes x through every layer in order. It returns the deepest
// layer's output (residual codes with that layer's label as the last column)
// together with the full label matrix: one column per layer, shallowest
// first. With zero fitted layers it returns a clone of x and an empty label
// matrix.
func (s *Sieve) Transform(x discrete.Matrix) (discrete.Matrix, discrete.Matrix, error) {
	if s.status == StatusUnfitted && s.origCards == nil {
		return nil, nil, ErrNotFitted
	}
	if err := x.Validate(); err != nil {
		return nil, nil, err
	}
	if x.Cols() != s.nVars {
		return nil, nil, ErrDimensionMismatch
	}

	labels := make(discrete.Matrix, x.Rows())
	for i := range labels {
		labels[i] = make([]int, 0, len(s.layers))
	}
	cur := x.Clone()
	for depth, layer := range s.layers {
		out, err := layer.Transform(cur)
		if err != nil {
			return nil, nil, fmt.Errorf("sieve: transforming through layer %d: %w", depth, err)
		}
		last := out.Cols() - 1
		for i := range labels {
			labels[i] = append(labels[i], out[i][last])
		}
		cur = out
	}
	return cur, labels, nil
}

// Invert reconstructs the original matrix from a deepest-layer output,
// walking the stack from the deepest layer back to layer 0.
func (s *Sieve) Invert(xr discrete.Matrix) (discrete.Matrix, error) {
	if s.status == StatusUnfitted && s.origCards == nil {
		return nil, ErrNotFitted
	}
	if err := xr.Validate(); err != nil {
		return nil, err
	}
	if xr.Cols() != s.nVars+len(s.layers) {
		return nil, ErrDimensionMismatch
	}
	cur := xr
	for depth := len(s.layers) - 1; depth >= 0; depth-- {
		out, err := s.layers[depth].Invert(cur)
		if err != nil {
			return nil, fmt.Errorf("sieve: inverting through layer %d: %w", depth, err)
		}
		cur = out
	}
	if len(s.layers) == 0 {
		cur = xr.Clone()
	}
	return cur, nil
}

// Predict reconstructs every original variable from labels alone.
// y must hold one label column per fitted layer (shallowest first); the
// result has one column per original variable. Cells that cannot be
// reconstructed (never-observed variables) come back as -1.
func (s *Sieve) Predict(y discrete.Matrix) (discrete.Matrix, error) {
	if len(s.layers) == 0 {
		return nil, ErrNotFitted
	}
	out := make(discrete.Matrix, y.Rows())
	for i := range out {
		out[i] = make([]int, s.nVars)
	}
	for j := 0; j < s.nVars; j++ {
		preds, err := s.PredictVariable(y, j)
		if err != nil {
			return nil, err
		}
		for i, v := range preds {
			out[i][j] = v
		}
	}
	return out, nil
}

// PredictVariable reconstructs variable i for every label row in ys: each
// residual code ever observed for the variable is inverted through the full
// layer stack under that row's labels, and the reconstructions vote,
// weighted by the code's historical frequency. The accumulator is sized from
// the variable's observed cardinality at fit time; reconstructions outside
// it (including the degenerate-model marker -1) are skipped.
func (s *Sieve) PredictVariable(ys discrete.Matrix, i int) ([]int, error) {
	if len(s.layers) == 0 {
		return nil, ErrNotFitted
	}
	if i < 0 || i >= s.nVars {
		return nil, ErrVariableIndex
	}
	if err := ys.Validate(); err != nil {
		return nil, err
	}
	if ys.Cols() != len(s.layers) {
		return nil, ErrDimensionMismatch
	}

	card := s.origCards[i]
	preds := make([]int, ys.Rows())
	for r, y := range ys {
		votes := make([]float64, card)
		voted := false
		for code, freq := range s.xStats[i] {
			if freq == 0 {
				continue
			}
			rec, err := s.invertVariable(code, y, i)
			if err != nil {
				return nil, err
			}
			if rec >= 0 && rec < card {
				votes[rec] += float64(freq)
				voted = true
			}
		}
		if !voted {
			preds[r] = -1
			continue
		}
		best := 0
		for v := 1; v < card; v++ {
			if votes[v] > votes[best] {
				best = v
			}
		}
		preds[r] = best
	}
	return preds, nil
}

// invertVariable threads one residual code for variable i back through every
// layer's residual model, deepest first, under the label row y.
func (s *Sieve) invertVariable(code int, y []int, i int) (int, error) {
	zi := code
	for depth := len(s.layers) - 1; depth >= 0; depth-- {
		out, err := s.layers[depth].remainders[i].Predict([]int{y[depth]}, []int{zi})
		if err != nil {
			return 0, fmt.Errorf("sieve: inverting variable %d through layer %d: %w", i, depth, err)
		}
		zi = out[0]
	}
	return zi, nil
}
