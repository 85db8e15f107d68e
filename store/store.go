// Package store persists fitted sieves as JSON files, each stamped with a
// unique model ID and its creation time so experiment runs stay traceable.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/infosieve/sieve"
)

// Envelope wraps a sieve snapshot with identifying metadata.
type Envelope struct {
	ModelID   string       `json:"model_id"`
	CreatedAt time.Time    `json:"created_at"`
	Sieve     *sieve.State `json:"sieve"`
}

// Save snapshots a fitted sieve into the JSON file at path, creating parent
// directories as needed, and returns the generated model ID. Sieves with
// custom extractor or remainder factories cannot be snapshotted; see
// sieve.ErrUnsupportedModel.
func Save(path string, s *sieve.Sieve) (string, error) {
	st, err := s.State()
	if err != nil {
		return "", fmt.Errorf("store: could not snapshot model: %w", err)
	}
	env := Envelope{
		ModelID:   uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Sieve:     st,
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("store: could not make dir %s: %w", dir, err)
		}
	}
	b, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: could not encode model: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("store: could not write %s: %w", path, err)
	}
	return env.ModelID, nil
}

// Load reads a model file written by Save and reconstructs a working sieve,
// returning the envelope alongside it for the metadata.
func Load(path string) (*sieve.Sieve, Envelope, error) {
	var env Envelope
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, env, fmt.Errorf("store: could not read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, env, fmt.Errorf("store: could not decode %s: %w", path, err)
	}
	s, err := sieve.FromState(env.Sieve)
	if err != nil {
		return nil, env, fmt.Errorf("store: could not rebuild model %s: %w", env.ModelID, err)
	}
	return s, env, nil
}
