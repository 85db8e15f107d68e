package discrete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infosieve/discrete"
)

// TestMatrix_Validate covers the empty and ragged failure modes plus the
// happy path.
func TestMatrix_Validate(t *testing.T) {
	assert.ErrorIs(t, discrete.Matrix{}.Validate(), discrete.ErrEmptyMatrix, "no rows must error")
	assert.ErrorIs(t, discrete.Matrix{{}}.Validate(), discrete.ErrEmptyMatrix, "no columns must error")
	assert.ErrorIs(t, discrete.Matrix{{1, 2}, {3}}.Validate(), discrete.ErrRaggedMatrix, "ragged rows must error")
	assert.NoError(t, discrete.Matrix{{1, 2}, {3, 4}}.Validate(), "rectangular matrix is valid")
}

// TestMatrix_CloneIsDeep verifies that mutating a clone never leaks into the
// original.
func TestMatrix_CloneIsDeep(t *testing.T) {
	m := discrete.Matrix{{1, 2}, {3, 4}}
	c := m.Clone()
	c[0][0] = 99
	assert.Equal(t, 1, m[0][0], "clone must not alias the original storage")
}

// TestMatrix_ColumnAndAppend exercises column extraction and appending,
// including their bound checks.
func TestMatrix_ColumnAndAppend(t *testing.T) {
	m := discrete.Matrix{{1, 2}, {3, 4}, {5, 6}}

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, col)

	_, err = m.Column(2)
	assert.ErrorIs(t, err, discrete.ErrOutOfRange)

	out, err := m.AppendColumn([]int{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, discrete.Matrix{{1, 2, 7}, {3, 4, 8}, {5, 6, 9}}, out)
	assert.Equal(t, 2, m.Cols(), "AppendColumn must not modify the receiver")

	_, err = m.AppendColumn([]int{1})
	assert.ErrorIs(t, err, discrete.ErrLengthMismatch)
}

// TestBincount_SkipsMissing checks that negative entries are excluded and
// that the histogram length tracks the largest observed value.
func TestBincount_SkipsMissing(t *testing.T) {
	assert.Equal(t, []int{1, 0, 3}, discrete.Bincount([]int{0, 2, 2, -1, 2, -5}))
	assert.Nil(t, discrete.Bincount([]int{-1, -2}), "all-missing slice has no histogram")
	assert.Nil(t, discrete.Bincount(nil))
}

// TestCardinality verifies empirical cardinality discovery.
func TestCardinality(t *testing.T) {
	assert.Equal(t, 4, discrete.Cardinality([]int{0, 3, 1, -1}))
	assert.Equal(t, 0, discrete.Cardinality([]int{-1, -1}))
}
