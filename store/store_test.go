package store_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infosieve/discrete"
	"github.com/katalvlaran/infosieve/sieve"
	"github.com/katalvlaran/infosieve/store"
)

// fitSieve builds a small fitted model over three copies of a hidden coin.
func fitSieve(t *testing.T) (*sieve.Sieve, discrete.Matrix) {
	t.Helper()
	rng := rand.New(rand.NewSource(2))
	x := make(discrete.Matrix, 300)
	for i := range x {
		v := rng.Intn(2)
		x[i] = []int{v, v, v}
	}
	s := sieve.New(sieve.DefaultOptions())
	require.NoError(t, s.Fit(x))
	return s, x
}

// TestSaveLoad_RoundTrip verifies that a persisted model reloads into a
// functionally identical sieve with its metadata intact.
func TestSaveLoad_RoundTrip(t *testing.T) {
	s, x := fitSieve(t)
	path := filepath.Join(t.TempDir(), "models", "sieve.json")

	id, err := store.Save(path, s)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	restored, env, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, id, env.ModelID)
	assert.False(t, env.CreatedAt.IsZero())

	r1, l1, err := s.Transform(x)
	require.NoError(t, err)
	r2, l2, err := restored.Transform(x)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "a reloaded model transforms identically")
	assert.Equal(t, l1, l2)
	assert.Equal(t, s.TC(), restored.TC())
}

// TestSave_UnfittedModel pins the snapshot error for a sieve with no layers.
func TestSave_UnfittedModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieve.json")
	_, err := store.Save(path, sieve.New(sieve.DefaultOptions()))
	assert.ErrorIs(t, err, sieve.ErrNotFitted)
}

// TestLoad_MissingFile pins the read error path.
func TestLoad_MissingFile(t *testing.T) {
	_, _, err := store.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
