// Package discrete provides the integer data-matrix type shared by every
// stage of the sieve, together with the counting statistics the stages are
// built on: value histograms, empirical entropy and mutual information.
//
// Conventions (used consistently across the repository):
//
//   - A Matrix is row-major: rows are samples, columns are variables.
//   - Cell values are non-negative categorical codes.
//   - A negative cell marks a MISSING observation; every statistic in this
//     package silently excludes missing entries rather than erroring.
//   - Variable cardinality is never declared up front; it is discovered
//     empirically as (largest observed value + 1).
//
// Entropies are measured in nats (natural logarithm), matching
// gonum/stat.Entropy, which performs the underlying computation.
package discrete
