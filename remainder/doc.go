// Package remainder models the part of one variable's value that a layer's
// label did not explain, as a small categorical "residual code".
//
// Construction trains on paired observations (x, y) of one variable and one
// label:
//
//  1. For every label value y, rank the variable values observed alongside
//     it by descending co-occurrence count (ties: ascending value).
//  2. The residual code of (x, y) is x's rank under y, capped at kMax-1;
//     values past the cap share the last code.
//  3. Decoding maps (y, z) back to the representative (most frequent)
//     variable value of that rank.
//
// Whenever at most kMax distinct values co-occur with each label, transform
// and predict form an exact bijection, so a sieve layer built on such models
// is lossless. Beyond the cap, the coding degrades gracefully to the most
// frequent survivors.
//
// Two statistics feed the sieve's convergence bounds:
//
//	MI() — mutual information between residual code and label, the residual
//	       "leakage" subtracted from a layer's explained total correlation.
//	H()  — entropy of the residual code; doubled, it bounds from above what
//	       the layer could have missed.
//
// MI() ≤ H() always holds, which is what keeps the sieve's upper bound above
// its lower bound.
package remainder
