package discrete_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infosieve/discrete"
)

const eps = 1e-12

// TestEntropy checks the degenerate, uniform and empty histograms.
func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, discrete.Entropy(nil), "empty histogram has zero entropy")
	assert.Equal(t, 0.0, discrete.Entropy([]int{5, 0}), "single-valued histogram has zero entropy")
	assert.InDelta(t, math.Log(2), discrete.Entropy([]int{10, 10}), eps, "uniform binary histogram has ln 2 entropy")
	assert.InDelta(t, math.Log(4), discrete.Entropy([]int{3, 3, 3, 3}), eps, "uniform 4-ary histogram has ln 4 entropy")
}

// TestJointCounts_SkipsIncompletePairs verifies missing handling and table shape.
func TestJointCounts_SkipsIncompletePairs(t *testing.T) {
	joint, err := discrete.JointCounts([]int{0, 1, -1, 1}, []int{0, 1, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}, {0, 1}}, joint, "only fully observed pairs are tallied")

	_, err = discrete.JointCounts([]int{0}, []int{0, 1})
	assert.ErrorIs(t, err, discrete.ErrLengthMismatch)

	joint, err = discrete.JointCounts([]int{-1, -1}, []int{0, 1})
	require.NoError(t, err)
	assert.Nil(t, joint, "no complete pair yields a nil table")
}

// TestMutualInformation checks the two analytic extremes: identical
// variables share their full entropy, independent variables share nothing.
func TestMutualInformation(t *testing.T) {
	xs := []int{0, 1, 0, 1, 0, 1, 0, 1}

	mi, err := discrete.MutualInformation(xs, xs)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), mi, eps, "MI of a binary variable with itself is its entropy")

	ys := []int{0, 0, 1, 1, 0, 0, 1, 1}
	mi, err = discrete.MutualInformation(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, 0, mi, eps, "balanced independent variables share no information")
}

// TestMutualInformation_NeverNegative exercises the round-off clamp on a
// skewed joint distribution.
func TestMutualInformation_NeverNegative(t *testing.T) {
	xs := []int{0, 0, 0, 1, 2, 2, 1, 0, 1, 2}
	ys := []int{1, 0, 1, 1, 0, 1, 0, 1, 1, 0}
	mi, err := discrete.MutualInformation(xs, ys)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mi, 0.0)
}
