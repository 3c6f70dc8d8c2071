// Package matrix implements dense matrices over arbitrary-precision integers,
// intended as the basis container for lattice-reduction algorithms. Entries
// are exact big.Int values stored by value in a row-major backing store; all
// exported accessors are bounds-checked with Python-style negative-index
// normalization, while the unexported hot path is not.
package matrix

import (
	"fmt"
	"math/big"

	"github.com/latmath/zzmat/utils/bignum"
)

// IntegerMatrix is a dense rows x cols matrix of arbitrary-precision
// integers. The backing store is exclusively owned by the matrix: every
// operation that produces a new matrix deep-copies, and Get returns a copy
// of the entry. The zero shape 0 x 0 is valid.
//
// An IntegerMatrix is not safe for concurrent mutation; each instance is
// meant to be exclusively owned by its caller.
type IntegerMatrix struct {
	rows, cols int
	d          [][]big.Int
}

// New allocates a zero-filled rows x cols matrix. Negative dimensions
// return ErrInvalidShape.
func New(rows, cols int) (*IntegerMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("cannot New with shape %d x %d: %w", rows, cols, ErrInvalidShape)
	}
	m := new(IntegerMatrix)
	m.resize(rows, cols)
	return m, nil
}

// NewIdentity allocates the n x n identity matrix.
func NewIdentity(n int) (*IntegerMatrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.d[i][i].SetInt64(1)
	}
	return m, nil
}

// CopyNew returns a deep copy of the matrix: the copy and the receiver never
// alias the same backing store.
func (m *IntegerMatrix) CopyNew() *IntegerMatrix {
	cpy := new(IntegerMatrix)
	cpy.resize(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cpy.d[i][j].Set(&m.d[i][j])
		}
	}
	return cpy
}

// Rows returns the number of rows.
func (m *IntegerMatrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *IntegerMatrix) Cols() int {
	return m.cols
}

// Dims returns the number of rows and columns, in that order.
func (m *IntegerMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Get returns a copy of the entry at (i, j). Negative indices count from
// the end, normalized once.
func (m *IntegerMatrix) Get(i, j int) (*big.Int, error) {
	var err error
	if i, err = m.rowIndex(i); err != nil {
		return nil, err
	}
	if j, err = m.colIndex(j); err != nil {
		return nil, err
	}
	return new(big.Int).Set(&m.d[i][j]), nil
}

// GetInt64 returns the entry at (i, j) as an int64. The second return value
// reports whether the entry fits in 64 bits.
func (m *IntegerMatrix) GetInt64(i, j int) (v int64, exact bool, err error) {
	x, err := m.Get(i, j)
	if err != nil {
		return 0, false, err
	}
	return x.Int64(), x.IsInt64(), nil
}

// Set assigns v to the entry at (i, j). Accepted types for v are those of
// bignum.ParseInt: string, uint, uint64, int, int64, *big.Float, *big.Int.
// Negative indices count from the end, normalized once.
func (m *IntegerMatrix) Set(i, j int, v interface{}) error {
	var err error
	if i, err = m.rowIndex(i); err != nil {
		return err
	}
	if j, err = m.colIndex(j); err != nil {
		return err
	}
	x, err := bignum.ParseInt(v)
	if err != nil {
		return fmt.Errorf("cannot Set (%d, %d): %w: %v", i, j, ErrTypeMismatch, err)
	}
	m.d[i][j].Set(x)
	return nil
}

// Flat returns a row-major copy of all entries, the inverse of NewFromFlat.
func (m *IntegerMatrix) Flat() []*big.Int {
	values := make([]*big.Int, 0, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			values = append(values, new(big.Int).Set(&m.d[i][j]))
		}
	}
	return values
}

// Equal reports whether m and other have the same shape and equal entries
// everywhere. There is no ordering relation between matrices.
func (m *IntegerMatrix) Equal(other *IntegerMatrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.d[i][j].Cmp(&other.d[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// at returns a pointer into the backing store. No bounds checking: callers
// must have normalized and validated i and j.
func (m *IntegerMatrix) at(i, j int) *big.Int {
	return &m.d[i][j]
}

// rowSlice returns the backing slice of row i. No bounds checking.
func (m *IntegerMatrix) rowSlice(i int) []big.Int {
	return m.d[i]
}

// resize grows or shrinks the backing store to rows x cols, preserving
// entries that remain in range and zero-filling newly exposed cells.
func (m *IntegerMatrix) resize(rows, cols int) {
	d := make([][]big.Int, rows)
	for i := range d {
		d[i] = make([]big.Int, cols)
		if i < m.rows {
			for j := 0; j < cols && j < m.cols; j++ {
				d[i][j].Set(&m.d[i][j])
			}
		}
	}
	m.d = d
	m.rows = rows
	m.cols = cols
}

// rowIndex normalizes a possibly negative row index and validates it
// against [0, rows).
func (m *IntegerMatrix) rowIndex(i int) (int, error) {
	if i < 0 {
		i += m.rows
	}
	if i < 0 || i >= m.rows {
		return 0, fmt.Errorf("row index %d not in [0, %d): %w", i, m.rows, ErrIndexOutOfRange)
	}
	return i, nil
}

// colIndex normalizes a possibly negative column index and validates it
// against [0, cols).
func (m *IntegerMatrix) colIndex(j int) (int, error) {
	if j < 0 {
		j += m.cols
	}
	if j < 0 || j >= m.cols {
		return 0, fmt.Errorf("column index %d not in [0, %d): %w", j, m.cols, ErrIndexOutOfRange)
	}
	return j, nil
}

// stopIndex normalizes a possibly negative stop bound against dim+1, so that
// -1 means "through the end" and stop == dim is representable.
func stopIndex(i, dim int) (int, error) {
	if i < 0 {
		i += dim + 1
	}
	if i < 0 || i > dim {
		return 0, fmt.Errorf("stop index %d not in [0, %d]: %w", i, dim, ErrIndexOutOfRange)
	}
	return i, nil
}
