package remainder

import (
	"errors"
	"sort"

	"github.com/katalvlaran/infosieve/discrete"
)

var (
	// ErrLengthMismatch indicates value and label slices of differing lengths.
	ErrLengthMismatch = errors.New("remainder: value and label slices differ in length")

	// ErrBadCardinality indicates a non-positive residual cardinality bound.
	ErrBadCardinality = errors.New("remainder: kMax must be at least 1")
)

// pair keys the learned (label, value) → code table.
type pair struct{ y, x int }

// Remainder is a fitted residual model for a single variable.
// It is immutable after New and safe for concurrent reads.
type Remainder struct {
	kMax       int
	codes      map[pair]int  // (label, value) → residual code
	decode     map[int][]int // label → representative value per code, rank order
	globalMode int           // most frequent value overall, -1 when unobserved
	card       int           // learned residual cardinality (≤ kMax)
	mi         float64       // MI(code; label) on the training pairs
	h          float64       // H(code) on the training pairs
}

// New fits a residual model on paired observations of one variable (xs) and
// one label (ys), bounding the residual code to kMax categories. Pairs where
// either side is missing (negative) are skipped; an entirely missing variable
// yields a degenerate model with MI()==0 and H()==0 rather than an error.
func New(xs, ys []int, kMax int) (*Remainder, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if kMax < 1 {
		return nil, ErrBadCardinality
	}

	// Co-occurrence counts per label, plus the overall value histogram.
	perLabel := make(map[int]map[int]int)
	totals := make(map[int]int)
	for i, x := range xs {
		if x < 0 || ys[i] < 0 {
			continue
		}
		byValue, ok := perLabel[ys[i]]
		if !ok {
			byValue = make(map[int]int)
			perLabel[ys[i]] = byValue
		}
		byValue[x]++
		totals[x]++
	}

	r := &Remainder{
		kMax:       kMax,
		codes:      make(map[pair]int),
		decode:     make(map[int][]int),
		globalMode: modeOf(totals),
	}

	for y, byValue := range perLabel {
		ranked := rankByCount(byValue)
		n := len(ranked)
		if n > kMax {
			n = kMax
		}
		reps := make([]int, n)
		for rank, x := range ranked {
			code := rank
			if code > kMax-1 {
				code = kMax - 1
			}
			r.codes[pair{y, x}] = code
			if rank < n {
				reps[rank] = x
			}
		}
		r.decode[y] = reps
		if n > r.card {
			r.card = n
		}
	}

	// Bound statistics come from the codes the model assigns to its own
	// training pairs.
	zs := make([]int, 0, len(xs))
	ls := make([]int, 0, len(xs))
	for i, x := range xs {
		if x < 0 || ys[i] < 0 {
			continue
		}
		zs = append(zs, r.codes[pair{ys[i], x}])
		ls = append(ls, ys[i])
	}
	r.mi, _ = discrete.MutualInformation(zs, ls)
	r.h = discrete.Entropy(discrete.Bincount(zs))

	return r, nil
}

// Transform maps each (value, label) pair to its residual code. Missing
// values stay missing (-1); pairs never seen in training code to 0.
func (r *Remainder) Transform(xs, ys []int) ([]int, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	zs := make([]int, len(xs))
	for i, x := range xs {
		if x < 0 {
			zs[i] = -1
			continue
		}
		zs[i] = r.codes[pair{ys[i], x}] // zero value doubles as the unseen-pair code
	}
	return zs, nil
}

// Predict inverts Transform: it maps each (label, residual code) pair back
// to a variable value. Missing codes predict missing (-1). Codes beyond what
// was learned for a label fall back to that label's most frequent value,
// then to the global mode; a degenerate model predicts -1 throughout.
func (r *Remainder) Predict(ys, zs []int) ([]int, error) {
	if len(ys) != len(zs) {
		return nil, ErrLengthMismatch
	}
	xs := make([]int, len(zs))
	for i, z := range zs {
		if z < 0 {
			xs[i] = -1
			continue
		}
		reps, ok := r.decode[ys[i]]
		switch {
		case ok && z < len(reps):
			xs[i] = reps[z]
		case ok && len(reps) > 0:
			xs[i] = reps[0]
		default:
			xs[i] = r.globalMode
		}
	}
	return xs, nil
}

// MI returns the mutual information, in nats, between the residual code and
// the label on the training pairs: the layer's per-variable lower-bound
// contribution.
func (r *Remainder) MI() float64 { return r.mi }

// H returns the entropy, in nats, of the residual code on the training
// pairs; doubled by the layer for its per-variable upper-bound contribution.
func (r *Remainder) H() float64 { return r.h }

// Cardinality returns the learned residual cardinality: the number of
// distinct codes the model can emit, at most kMax. Diagnostic only.
func (r *Remainder) Cardinality() int { return r.card }

// rankByCount orders the keys of a count map by descending count, breaking
// ties by ascending key so fitting is deterministic.
func rankByCount(counts map[int]int) []int {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// modeOf returns the most frequent key (smallest on ties), or -1 for an
// empty map.
func modeOf(counts map[int]int) int {
	mode, best := -1, 0
	for k, c := range counts {
		if c > best || (c == best && mode >= 0 && k < mode) {
			mode, best = k, c
		}
	}
	return mode
}
