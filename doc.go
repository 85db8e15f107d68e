// Package infosieve is an in-memory library for greedy, layered
// decomposition of the total correlation in categorical data: the
// Information Sieve.
//
// 🚀 What is infosieve?
//
//	Each pass ("layer") of the sieve learns one latent factor that is
//	maximally informative about the data, then re-encodes every variable
//	as a small "remainder" code carrying only the information the factor
//	did not explain. The remainders feed the next layer, so successive
//	factors pick up progressively finer structure until nothing above the
//	sampling-noise floor is left.
//
// The library is organized into focused subpackages:
//
//	discrete/  — integer data matrices, histograms, entropy & mutual information
//	corex/     — single-factor extraction (seeded, deterministic clustering)
//	remainder/ — bounded-cardinality residual coding with exact inversion
//	sieve/     — the layered orchestration: fit, transform, invert, predict
//	store/     — JSON persistence of fitted models
//	cmd/sieve/ — command-line front end over CSV files
//
// Quick sketch of one layer:
//
//	x ──corex──▶ y (one label per row)
//	x, y ──remainder──▶ z (one small code per cell)
//	next layer input = [z | y]   (label always the last column)
//
// Everything is deterministic given a seed, pure Go, and safe to use from a
// single goroutine; fitted models are immutable once fitted and may be shared.
//
//	go get github.com/katalvlaran/infosieve
package infosieve
