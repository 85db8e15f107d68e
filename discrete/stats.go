package discrete

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the empirical Shannon entropy, in nats, of the
// distribution described by counts (index = value, entry = observation
// count). Zero counts contribute nothing; an all-zero or empty histogram has
// entropy 0.
func Entropy(counts []int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c)
	}
	floats.Scale(1/float64(total), p)
	return stat.Entropy(p)
}

// JointCounts tallies co-occurrences of paired values: out[x][y] is the
// number of samples where xs[i]==x and ys[i]==y. Pairs where either side is
// missing (negative) are skipped. Table dimensions are the empirical
// cardinalities of the two slices; a nil table is returned when no complete
// pair exists. Returns ErrLengthMismatch when the slices differ in length.
func JointCounts(xs, ys []int) ([][]int, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	kx, ky := Cardinality(xs), Cardinality(ys)
	if kx == 0 || ky == 0 {
		return nil, nil
	}
	joint := make([][]int, kx)
	for i := range joint {
		joint[i] = make([]int, ky)
	}
	for i, x := range xs {
		if x >= 0 && ys[i] >= 0 {
			joint[x][ys[i]]++
		}
	}
	return joint, nil
}

// MutualInformation returns the empirical mutual information, in nats,
// between two paired categorical slices, computed as H(X)+H(Y)-H(X,Y) over
// the samples where both sides are observed. The result is clamped at 0 to
// absorb floating-point round-off; it is 0 when no complete pair exists.
func MutualInformation(xs, ys []int) (float64, error) {
	joint, err := JointCounts(xs, ys)
	if err != nil {
		return 0, err
	}
	return MutualInformationFromJoint(joint), nil
}

// MutualInformationFromJoint computes mutual information, in nats, from a
// pre-tallied co-occurrence table (as produced by JointCounts). A nil or
// all-zero table yields 0.
func MutualInformationFromJoint(joint [][]int) float64 {
	if len(joint) == 0 {
		return 0
	}
	kx, ky := len(joint), len(joint[0])
	marginX := make([]int, kx)
	marginY := make([]int, ky)
	flat := make([]int, 0, kx*ky)
	for x, row := range joint {
		for y, c := range row {
			marginX[x] += c
			marginY[y] += c
			flat = append(flat, c)
		}
	}
	mi := Entropy(marginX) + Entropy(marginY) - Entropy(flat)
	if mi < 0 {
		mi = 0
	}
	return mi
}
