// Package corex learns a single categorical latent factor that is maximally
// informative about a categorical data matrix.
//
// It fills the sieve's Factor-Extractor contract with a deliberately simple,
// fully deterministic procedure: hard expectation-maximization of a
// naive-Bayes mixture.
//
// Algorithm outline:
//
//  1. Assign every sample a random label in [0, Dim) from a seeded source.
//  2. Estimate the smoothed conditionals p(x_i | y) and the marginal p(y)
//     from the current labels, skipping missing (negative) cells.
//  3. Reassign each sample to the label with the highest posterior score.
//  4. Repeat from step 2 until at most Tol·n labels change or MaxIter
//     iterations have run.
//  5. Run Restarts independent seeds and keep the run with the highest
//     total-correlation estimate.
//
// For deterministic labels Y the CorEx objective reduces to
//
//	TC(X;Y) = Σ_i I(X_i;Y) − H(Y)
//
// which is what TC reports and what the restart selection maximizes. MIs
// reports the per-variable terms I(X_i;Y), each with the Miller–Madow
// small-sample bias adjustment so that uncorrelated noise scores ~0 rather
// than accumulating the plug-in estimator's positive bias.
//
// There is no global random state anywhere: every run is a pure function of
// (Options, data).
package corex
