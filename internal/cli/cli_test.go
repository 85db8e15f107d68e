package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infosieve/discrete"
)

// TestLoadConfig_PartialFile verifies that unset fields fall back to the
// library defaults while set fields stick.
func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_layers: 3\ncorex:\n  dim: 4\n  seed: 99\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	opts := cfg.Options()

	assert.Equal(t, 3, opts.MaxLayers)
	assert.Equal(t, 2, opts.KMax, "unset k_max keeps the default")
	assert.Equal(t, 4, opts.CorEx.Dim)
	assert.Equal(t, int64(99), opts.CorEx.Seed)
	assert.Equal(t, 100, opts.CorEx.MaxIter, "unset max_iter keeps the default")
}

// TestLoadConfig_EmptyPathYieldsDefaults checks the no-config path.
func TestLoadConfig_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Options().MaxLayers)
}

// TestLoadConfig_BadFile pins the parse error path.
func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t not yaml ["), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// TestCSV_RoundTrip verifies that missing cells survive a write/read cycle
// as -1.
func TestCSV_RoundTrip(t *testing.T) {
	m := discrete.Matrix{{0, 1, -1}, {2, -1, 0}}

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, m))
	back, err := ReadMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

// TestReadMatrix_RejectsNonInteger pins the cell validation error.
func TestReadMatrix_RejectsNonInteger(t *testing.T) {
	_, err := ReadMatrix(bytes.NewBufferString("1,x\n"))
	assert.Error(t, err)
}

// TestReadMatrix_NormalizesNegatives checks that any negative code collapses
// onto the single missing marker.
func TestReadMatrix_NormalizesNegatives(t *testing.T) {
	m, err := ReadMatrix(bytes.NewBufferString("-7,3\n"))
	require.NoError(t, err)
	assert.Equal(t, discrete.Matrix{{-1, 3}}, m)
}
