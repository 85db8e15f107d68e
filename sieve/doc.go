// Package sieve implements the Information Sieve: greedy, layered
// decomposition of the total correlation in a categorical data matrix.
//
// One layer = one factor extraction plus one residual model per input
// column. The layer re-encodes its input as residual codes and appends the
// layer's label as the LAST column; that column position is a package-wide
// invariant relied on by transform, invert and prediction alike:
//
//	layer input  (width w):  [x_0 … x_{w-1}]
//	layer output (width w+1): [z_0 … z_{w-1} | y]
//
// The Sieve grows its layer stack greedily. A candidate layer is accepted
// iff its factor's total-correlation estimate exceeds the residual leakage
// already accounted for (the layer's lower bound) by more than the
// sampling-noise floor 1/n_samples:
//
//	tc − lb > 1/n
//
// Rejection is the designed stopping condition, not an error; fitting always
// terminates in one of two successful states (Converged, MaxLayers).
//
// Transformation walks the stack forward, inversion walks it backward, and
// prediction of a variable from labels alone inverts every layer's residual
// model in reverse, weighting each historically observed residual code by
// its frequency.
//
// The Factor-Extractor and Remainder-Model contracts are consumed as
// interfaces; packages corex and remainder provide the default bindings, and
// Options accepts substitute factories for either.
//
// A Sieve is single-goroutine during Fit and immutable afterwards.
package sieve
