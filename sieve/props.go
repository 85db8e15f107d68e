package sieve

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/infosieve/discrete"
)

// Len returns the number of accepted layers.
func (s *Sieve) Len() int { return len(s.layers) }

// Status reports how (or whether) fitting terminated.
func (s *Sieve) Status() Status { return s.status }

// Layers returns the accepted layer stack, shallowest first. The slice is a
// copy; the layers themselves are shared and immutable.
func (s *Sieve) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Labels returns the training labels as an (n_samples × n_layers) matrix,
// column order = layer order. Nil with zero layers.
func (s *Sieve) Labels() discrete.Matrix {
	if len(s.layers) == 0 {
		return nil
	}
	n := len(s.layers[0].labels)
	out := make(discrete.Matrix, n)
	for i := range out {
		out[i] = make([]int, len(s.layers))
		for k, layer := range s.layers {
			out[i][k] = layer.labels[i]
		}
	}
	return out
}

// TCs returns each layer's total-correlation estimate, in layer order.
func (s *Sieve) TCs() []float64 {
	out := make([]float64, len(s.layers))
	for k, layer := range s.layers {
		out[k] = layer.TC()
	}
	return out
}

// TC returns the aggregate total-correlation estimate: the sum of TCs.
func (s *Sieve) TC() float64 {
	sum := 0.0
	for _, layer := range s.layers {
		sum += layer.TC()
	}
	return sum
}

// LB returns the aggregate lower bound: the sum of each layer's LB.
func (s *Sieve) LB() float64 {
	sum := 0.0
	for _, layer := range s.layers {
		sum += layer.LB()
	}
	return sum
}

// UB returns the aggregate upper bound: the sum of each layer's UB.
func (s *Sieve) UB() float64 {
	sum := 0.0
	for _, layer := range s.layers {
		sum += layer.UB()
	}
	return sum
}

// MIs returns the stacked per-variable mutual-information matrix: one row
// per layer. Layer k's input is one column wider than layer k-1's, so each
// row occupies a widening span and earlier rows are right-padded with exact
// zeros. Shape: (n_layers) × (n_variables + n_layers − 1). Nil with zero
// layers.
func (s *Sieve) MIs() *mat.Dense {
	l := len(s.layers)
	if l == 0 {
		return nil
	}
	cols := s.nVars + l - 1
	out := mat.NewDense(l, cols, nil)
	for k, layer := range s.layers {
		for j, mi := range layer.extractor.MIs() {
			out.Set(k, j, mi)
		}
	}
	return out
}

// Clusters assigns each input column (original variables plus the labels
// appended along the way) to the layer most informed about it: the arg-max
// down each column of MIs. Nil with zero layers.
func (s *Sieve) Clusters() []int {
	mis := s.MIs()
	if mis == nil {
		return nil
	}
	rows, cols := mis.Dims()
	out := make([]int, cols)
	for j := 0; j < cols; j++ {
		best := 0
		for k := 1; k < rows; k++ {
			if mis.At(k, j) > mis.At(best, j) {
				best = k
			}
		}
		out[j] = best
	}
	return out
}
