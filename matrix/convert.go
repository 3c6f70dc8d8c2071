package matrix

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Source is the capability-based input contract for NewFromSource: anything
// that knows its own shape and can produce each entry. It replaces
// duck-typed shape probing with one explicit adapter.
type Source interface {
	Dims() (rows, cols int)
	At(i, j int) *big.Int
}

// NewFromSource builds a matrix from any Source, deep-copying every entry.
func NewFromSource(src Source) (*IntegerMatrix, error) {
	rows, cols := src.Dims()
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.d[i][j].Set(src.At(i, j))
		}
	}
	return m, nil
}

// NewFromFlat builds a rows x cols matrix from a row-major flat sequence of
// values. The sequence must hold at least rows*cols values; extra values are
// ignored.
func NewFromFlat(rows, cols int, values []*big.Int) (*IntegerMatrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) < rows*cols {
		return nil, fmt.Errorf("cannot NewFromFlat %d x %d from %d values: %w", rows, cols, len(values), ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.d[i][j].Set(values[i*cols+j])
		}
	}
	return m, nil
}

// NewFromIntSlice builds a rows x cols matrix from a row-major flat sequence
// of machine integers.
func NewFromIntSlice[T constraints.Integer](rows, cols int, values []T) (*IntegerMatrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) < rows*cols {
		return nil, fmt.Errorf("cannot NewFromIntSlice %d x %d from %d values: %w", rows, cols, len(values), ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			setInt(&m.d[i][j], values[i*cols+j])
		}
	}
	return m, nil
}

// NewFromSlices builds a matrix from a finite sequence of equally sized
// rows. Ragged input is ErrRaggedInput; an empty sequence yields the 0 x 0
// matrix.
func NewFromSlices[T constraints.Integer](rows [][]T) (*IntegerMatrix, error) {
	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrRaggedInput)
		}
		for j, v := range row {
			setInt(&m.d[i][j], v)
		}
	}
	return m, nil
}

func setInt[T constraints.Integer](z *big.Int, v T) {
	if v < 0 {
		z.SetInt64(int64(v))
	} else {
		z.SetUint64(uint64(v))
	}
}
