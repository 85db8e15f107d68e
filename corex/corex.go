package corex

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/infosieve/discrete"
)

// CorEx is a single-factor extractor. Zero value is not usable; construct
// with New, then Fit. A fitted CorEx is immutable and safe for concurrent
// reads.
type CorEx struct {
	opts   Options
	fitted bool

	nVars int
	cards []int // empirical cardinality per variable at fit time

	logPy   []float64     // log p(y)
	logPxgy [][][]float64 // [variable][label][value] = log p(x_i=value | y=label)

	labels []int
	tc     float64
	mis    []float64
}

// New returns an unfitted extractor with the given options.
func New(opts Options) *CorEx { return &CorEx{opts: opts} }

// Fit learns one categorical factor from x. Negative cells are treated as
// missing and excluded from both estimation and scoring. Fit is
// deterministic given Options.Seed.
func (c *CorEx) Fit(x discrete.Matrix) error {
	if err := c.opts.validate(); err != nil {
		return err
	}
	if err := x.Validate(); err != nil {
		return err
	}

	c.nVars = x.Cols()
	c.cards = make([]int, c.nVars)
	for j := 0; j < c.nVars; j++ {
		col, _ := x.Column(j)
		c.cards[j] = discrete.Cardinality(col)
	}

	bestTC := math.Inf(-1)
	for r := 0; r < c.opts.Restarts; r++ {
		labels := c.run(x, rand.New(rand.NewSource(c.opts.Seed+int64(r))))
		logPy, logPxgy := c.estimate(x, labels)
		tc, mis := c.score(x, labels)
		if tc > bestTC {
			bestTC = tc
			c.labels, c.logPy, c.logPxgy = labels, logPy, logPxgy
			c.tc, c.mis = tc, mis
		}
	}

	c.fitted = true
	return nil
}

// run performs one hard-EM restart and returns its converged labels.
func (c *CorEx) run(x discrete.Matrix, rng *rand.Rand) []int {
	n := x.Rows()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(c.opts.Dim)
	}

	scores := make([]float64, n)
	for iter := 0; iter < c.opts.MaxIter; iter++ {
		logPy, logPxgy := c.estimate(x, labels)
		changed := 0
		for i, row := range x {
			y, score := c.assign(row, logPy, logPxgy)
			scores[i] = score
			if y != labels[i] {
				labels[i] = y
				changed++
			}
		}
		changed += rescueEmptyLabels(labels, scores, c.opts.Dim)
		if float64(changed) <= c.opts.Tol*float64(n) {
			break
		}
	}
	return labels
}

// rescueEmptyLabels reseeds every unused label with the currently
// worst-explained sample, so a merged pair of clusters can still split on a
// later sweep instead of sticking at a collapsed fixed point. Returns the
// number of reassignments.
func rescueEmptyLabels(labels []int, scores []float64, dim int) int {
	used := make([]int, dim)
	for _, y := range labels {
		used[y]++
	}
	moved := 0
	for y := 0; y < dim; y++ {
		if used[y] > 0 {
			continue
		}
		worst := -1
		for i, s := range scores {
			if used[labels[i]] <= 1 {
				continue // don't empty another label in turn
			}
			if worst < 0 || s < scores[worst] {
				worst = i
			}
		}
		if worst < 0 {
			break
		}
		used[labels[worst]]--
		labels[worst] = y
		used[y]++
		moved++
	}
	return moved
}

// estimate builds the smoothed log-probability tables implied by labels.
func (c *CorEx) estimate(x discrete.Matrix, labels []int) ([]float64, [][][]float64) {
	dim := c.opts.Dim
	n := float64(len(labels))

	countY := make([]float64, dim)
	for _, y := range labels {
		countY[y]++
	}
	logPy := make([]float64, dim)
	for y := range logPy {
		logPy[y] = math.Log((countY[y] + smoothing) / (n + smoothing*float64(dim)))
	}

	logPxgy := make([][][]float64, c.nVars)
	for j := 0; j < c.nVars; j++ {
		k := c.cards[j]
		counts := make([][]float64, dim)
		for y := range counts {
			counts[y] = make([]float64, k)
		}
		observed := make([]float64, dim) // per-label observed (non-missing) rows
		for i, row := range x {
			if v := row[j]; v >= 0 && v < k {
				counts[labels[i]][v]++
				observed[labels[i]]++
			}
		}
		table := make([][]float64, dim)
		for y := 0; y < dim; y++ {
			table[y] = make([]float64, k)
			for v := 0; v < k; v++ {
				table[y][v] = math.Log((counts[y][v] + smoothing) / (observed[y] + smoothing*float64(k)))
			}
		}
		logPxgy[j] = table
	}
	return logPy, logPxgy
}

// assign scores one sample row against the tables and returns the arg-max
// label together with its log score, preferring the smaller label on exact
// ties. Missing cells and values beyond the fitted cardinality contribute
// nothing.
func (c *CorEx) assign(row []int, logPy []float64, logPxgy [][][]float64) (int, float64) {
	best, bestScore := 0, math.Inf(-1)
	for y := 0; y < c.opts.Dim; y++ {
		score := logPy[y]
		for j, v := range row {
			if v >= 0 && v < c.cards[j] {
				score += logPxgy[j][y][v]
			}
		}
		if score > bestScore {
			best, bestScore = y, score
		}
	}
	return best, bestScore
}

// score computes the per-variable mutual informations I(X_i;Y) and the
// total-correlation estimate Σ_i I(X_i;Y) − H(Y) for the given labels.
//
// Each MI estimate carries the Miller–Madow small-sample adjustment,
// (k_x−1)(k_y−1)/(2n), clamped at zero. Without it the positive bias of
// plug-in MI accumulates across variables and can push the TC of pure noise
// above the sieve's 1/n acceptance floor.
func (c *CorEx) score(x discrete.Matrix, labels []int) (float64, []float64) {
	ky := discrete.Cardinality(labels)
	mis := make([]float64, c.nVars)
	sum := 0.0
	for j := 0; j < c.nVars; j++ {
		col, _ := x.Column(j)
		mi, _ := discrete.MutualInformation(col, labels)
		observed := 0
		for _, v := range col {
			if v >= 0 {
				observed++
			}
		}
		if observed > 0 {
			mi -= float64((c.cards[j]-1)*(ky-1)) / (2 * float64(observed))
		}
		if mi < 0 {
			mi = 0
		}
		mis[j] = mi
		sum += mi
	}
	return sum - discrete.Entropy(discrete.Bincount(labels)), mis
}

// Labels returns the training labels, one per sample. Nil before Fit.
func (c *CorEx) Labels() []int { return c.labels }

// Transform applies the fitted factor to new data with the same variable
// layout, returning one label per row.
func (c *CorEx) Transform(x discrete.Matrix) ([]int, error) {
	if !c.fitted {
		return nil, ErrNotFitted
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if x.Cols() != c.nVars {
		return nil, ErrDimensionMismatch
	}
	labels := make([]int, x.Rows())
	for i, row := range x {
		labels[i], _ = c.assign(row, c.logPy, c.logPxgy)
	}
	return labels, nil
}

// TC returns the total-correlation estimate of the fitted factor.
func (c *CorEx) TC() float64 { return c.tc }

// MIs returns the per-variable mutual-information estimates I(X_i;Y).
// Nil before Fit.
func (c *CorEx) MIs() []float64 { return c.mis }
