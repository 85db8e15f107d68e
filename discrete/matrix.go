package discrete

// Matrix is a row-major matrix of categorical codes.
// Rows are samples, columns are variables; negative cells are missing.
//
// A Matrix is a plain [][]int, so callers may build one directly, but every
// sieve entry point validates shape with Validate before use.
type Matrix [][]int

// Rows returns the number of samples.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of variables, 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that the matrix is non-empty and rectangular.
// Returns ErrEmptyMatrix or ErrRaggedMatrix accordingly.
func (m Matrix) Validate() error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyMatrix
	}
	w := len(m[0])
	for _, row := range m[1:] {
		if len(row) != w {
			return ErrRaggedMatrix
		}
	}
	return nil
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// Column returns a copy of column j. Returns ErrOutOfRange when j does not
// address a column of the (rectangular) matrix.
func (m Matrix) Column(j int) ([]int, error) {
	if j < 0 || j >= m.Cols() {
		return nil, ErrOutOfRange
	}
	col := make([]int, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col, nil
}

// AppendColumn returns a new matrix with col appended as the last column.
// The receiver is not modified. Returns ErrLengthMismatch when col does not
// have one entry per row.
func (m Matrix) AppendColumn(col []int) (Matrix, error) {
	if len(col) != len(m) {
		return nil, ErrLengthMismatch
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row)+1)
		copy(out[i], row)
		out[i][len(row)] = col[i]
	}
	return out, nil
}

// Bincount returns the number of occurrences of each non-negative value in
// xs: index = value, entry = count. Negative (missing) entries are skipped.
// Returns nil when xs holds no non-negative value.
func Bincount(xs []int) []int {
	k := Cardinality(xs)
	if k == 0 {
		return nil
	}
	counts := make([]int, k)
	for _, v := range xs {
		if v >= 0 {
			counts[v]++
		}
	}
	return counts
}

// Cardinality returns the empirical cardinality of xs: the largest
// non-negative value plus one, or 0 when every entry is missing.
func Cardinality(xs []int) int {
	k := 0
	for _, v := range xs {
		if v >= 0 && v+1 > k {
			k = v + 1
		}
	}
	return k
}
