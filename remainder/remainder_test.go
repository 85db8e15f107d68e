package remainder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infosieve/remainder"
)

// TestNew_InputValidation covers the two constructor error paths.
func TestNew_InputValidation(t *testing.T) {
	_, err := remainder.New([]int{1}, []int{0, 1}, 2)
	assert.ErrorIs(t, err, remainder.ErrLengthMismatch)

	_, err = remainder.New([]int{1}, []int{0}, 0)
	assert.ErrorIs(t, err, remainder.ErrBadCardinality)
}

// TestRoundTrip_WithinCap verifies the lossless-bijection guarantee: with at
// most kMax distinct values per label, predict(transform(x)) == x exactly.
func TestRoundTrip_WithinCap(t *testing.T) {
	xs := []int{0, 1, 2, 0, 1, 2, 2, 1}
	ys := []int{0, 0, 0, 1, 1, 1, 0, 1}

	r, err := remainder.New(xs, ys, 3)
	require.NoError(t, err)

	zs, err := r.Transform(xs, ys)
	require.NoError(t, err)
	back, err := r.Predict(ys, zs)
	require.NoError(t, err)
	assert.Equal(t, xs, back, "within the cap the coding must be a bijection")
	assert.Equal(t, 3, r.Cardinality())
}

// TestCap_MergesTail verifies that values beyond kMax ranks share the last
// code and decode to the most frequent survivor of that rank.
func TestCap_MergesTail(t *testing.T) {
	// Under label 0: value 0 seen 3x, value 1 seen 2x, value 2 seen 1x.
	xs := []int{0, 0, 0, 1, 1, 2}
	ys := []int{0, 0, 0, 0, 0, 0}

	r, err := remainder.New(xs, ys, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Cardinality(), "cardinality is capped at kMax")

	zs, err := r.Transform(xs, ys)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, zs, "ranks past the cap collapse onto the last code")

	back, err := r.Predict(ys, zs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, back, "the merged code decodes to its representative value")
}

// TestMissingValues_PropagateThroughTransformAndPredict checks the -1
// conventions on both directions.
func TestMissingValues_PropagateThroughTransformAndPredict(t *testing.T) {
	r, err := remainder.New([]int{0, 1, -1}, []int{0, 0, 0}, 2)
	require.NoError(t, err)

	zs, err := r.Transform([]int{0, -3, 1}, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, -1, 1}, zs, "missing values stay missing")

	back, err := r.Predict([]int{0, 0}, []int{-1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0}, back, "missing codes predict missing")
}

// TestDegenerateModel verifies the all-missing contract: construction
// succeeds, both bound statistics are zero, predictions are unknown.
func TestDegenerateModel(t *testing.T) {
	r, err := remainder.New([]int{-1, -1, -1}, []int{0, 1, 0}, 2)
	require.NoError(t, err, "an all-missing variable must not fail construction")

	assert.Zero(t, r.MI(), "degenerate model reports zero mutual information")
	assert.Zero(t, r.H(), "degenerate model reports zero entropy")
	assert.Zero(t, r.Cardinality())

	back, err := r.Predict([]int{0, 1}, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1}, back, "nothing was observed, nothing can be predicted")
}

// TestBoundStatistics checks MI and H on a hand-computable example and the
// MI ≤ H ordering that underpins the sieve's ub ≥ lb invariant.
func TestBoundStatistics(t *testing.T) {
	// Perfect remainder: within each label the value is constant, so every
	// code is 0: zero entropy, zero leakage.
	r, err := remainder.New([]int{5, 5, 7, 7}, []int{0, 0, 1, 1}, 2)
	require.NoError(t, err)
	assert.Zero(t, r.MI())
	assert.Zero(t, r.H())

	// Residual carries one fair bit independent of the label.
	r, err = remainder.New([]int{0, 1, 0, 1}, []int{0, 0, 1, 1}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, r.MI(), 1e-12, "code is independent of the label here")
	assert.InDelta(t, math.Log(2), r.H(), 1e-12, "one fair bit of residual entropy")
	assert.LessOrEqual(t, r.MI(), r.H())
}

// TestPredict_UnseenCodeFallsBack verifies the documented fallback chain for
// codes or labels never seen in training.
func TestPredict_UnseenCodeFallsBack(t *testing.T) {
	r, err := remainder.New([]int{4, 4, 4, 6}, []int{0, 0, 0, 0}, 3)
	require.NoError(t, err)

	back, err := r.Predict([]int{0, 0, 1}, []int{2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 4, back[0], "code past the learned ranks falls back to the label mode")
	assert.Equal(t, 6, back[1])
	assert.Equal(t, 4, back[2], "unknown label falls back to the global mode")
}
