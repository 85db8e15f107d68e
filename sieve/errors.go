package sieve

import "errors"

// Sentinel errors returned by this package. Match with errors.Is; collaborator
// failures (extractor, remainder) propagate wrapped with layer context.
var (
	// ErrBadOptions indicates a nonsensical configuration (see Options).
	ErrBadOptions = errors.New("sieve: invalid options")

	// ErrNotFitted indicates an operation that needs at least one fitted layer.
	ErrNotFitted = errors.New("sieve: model has no fitted layers")

	// ErrDimensionMismatch indicates data whose width does not match the
	// layout the queried operation expects.
	ErrDimensionMismatch = errors.New("sieve: data width differs from fitted layout")

	// ErrVariableIndex indicates a per-variable query outside [0, n_variables).
	ErrVariableIndex = errors.New("sieve: variable index out of range")

	// ErrUnsupportedModel indicates a snapshot of a Sieve built with custom
	// extractor or remainder factories, which cannot be serialized.
	ErrUnsupportedModel = errors.New("sieve: snapshots require the built-in extractor and remainder models")
)
