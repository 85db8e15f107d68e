package discrete

import "errors"

// Sentinel errors returned by this package. Callers must match them with
// errors.Is; no function here panics on user input.
var (
	// ErrEmptyMatrix indicates a matrix with zero rows where data was required.
	ErrEmptyMatrix = errors.New("discrete: matrix has no rows")

	// ErrRaggedMatrix indicates that not all rows share the same length.
	ErrRaggedMatrix = errors.New("discrete: rows have differing lengths")

	// ErrLengthMismatch indicates paired slices of differing lengths.
	ErrLengthMismatch = errors.New("discrete: slice lengths differ")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("discrete: index out of range")
)
