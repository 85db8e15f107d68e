package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/infosieve/discrete"
)

// ReadMatrix parses CSV into a data matrix. Cells are integer category
// codes; an empty cell or any negative number marks a missing value (-1).
func ReadMatrix(r io.Reader) (discrete.Matrix, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cli: could not parse csv: %w", err)
	}
	m := make(discrete.Matrix, len(records))
	for i, rec := range records {
		m[i] = make([]int, len(rec))
		for j, cell := range rec {
			if cell == "" {
				m[i][j] = -1
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("cli: row %d column %d: %q is not an integer", i+1, j+1, cell)
			}
			if v < 0 {
				v = -1
			}
			m[i][j] = v
		}
	}
	return m, nil
}

// WriteMatrix writes a data matrix as CSV, encoding missing values (any
// negative cell) as empty cells so ReadMatrix round-trips.
func WriteMatrix(w io.Writer, m discrete.Matrix) error {
	cw := csv.NewWriter(w)
	rec := make([]string, 0, m.Cols())
	for _, row := range m {
		rec = rec[:0]
		for _, v := range row {
			if v < 0 {
				rec = append(rec, "")
			} else {
				rec = append(rec, strconv.Itoa(v))
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cli: could not write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// readMatrixFile is ReadMatrix over a file path.
func readMatrixFile(path string) (discrete.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: could not open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMatrix(f)
}

// writeMatrixFile is WriteMatrix over a file path.
func writeMatrixFile(path string, m discrete.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: could not create %s: %w", path, err)
	}
	defer f.Close()
	return WriteMatrix(f, m)
}
