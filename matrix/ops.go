package matrix

import (
	"fmt"
	"math/big"

	"github.com/latmath/zzmat/utils/bignum"
)

// Mul returns the product a x b. The shared dimension must match
// (a.Cols() == b.Rows()), else ErrDimensionMismatch. Entries are exact sums
// of products accumulated over big.Int; the kernel is the naive O(n^3)
// algorithm.
func Mul(a, b *IntegerMatrix) (*IntegerMatrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("cannot Mul %d x %d by %d x %d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	c, err := New(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	tmp := new(big.Int)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			acc := c.at(i, j)
			for k := 0; k < a.cols; k++ {
				tmp.Mul(a.at(i, k), b.at(k, j))
				acc.Add(acc, tmp)
			}
		}
	}
	return c, nil
}

// Mod reduces every entry in place to its centered representative modulo q,
// lying in (-q/2, q/2]. q must be positive.
func (m *IntegerMatrix) Mod(q *big.Int) error {
	return m.ModRange(q, 0, 0, -1, -1)
}

// ModRange reduces the entries of rows [startRow, stopRow) and columns
// [startCol, stopCol) in place to their centered representatives modulo q.
// The row and column ranges are independent masks. Stops normalize against
// rows+1 and cols+1, so -1 means "through the end"; an empty range is a
// no-op. q must be positive.
func (m *IntegerMatrix) ModRange(q *big.Int, startRow, startCol, stopRow, stopCol int) error {
	if q.Sign() <= 0 {
		return fmt.Errorf("cannot ModRange with q = %v: %w", q, ErrNonPositiveModulus)
	}
	var err error
	if startRow, err = stopIndex(startRow, m.rows); err != nil {
		return err
	}
	if stopRow, err = stopIndex(stopRow, m.rows); err != nil {
		return err
	}
	if startCol, err = stopIndex(startCol, m.cols); err != nil {
		return err
	}
	if stopCol, err = stopIndex(stopCol, m.cols); err != nil {
		return err
	}
	qHalf := new(big.Int).Rsh(q, 1)
	for i := startRow; i < stopRow; i++ {
		for j := startCol; j < stopCol; j++ {
			v := m.at(i, j)
			bignum.CenterMod(v, v, q, qHalf)
		}
	}
	return nil
}

// ModNew returns a deep copy of m with every entry reduced to its centered
// representative modulo q.
func (m *IntegerMatrix) ModNew(q *big.Int) (*IntegerMatrix, error) {
	cpy := m.CopyNew()
	if err := cpy.Mod(q); err != nil {
		return nil, err
	}
	return cpy, nil
}

// Slice returns a deep copy of rows [start, stop). Bounds normalize against
// rows+1, so Slice(0, -1) copies all rows.
func (m *IntegerMatrix) Slice(start, stop int) (*IntegerMatrix, error) {
	return m.Submatrix(start, 0, stop, m.cols)
}

// Submatrix returns a deep copy of the rectangular block of rows
// [rowStart, rowStop) and columns [colStart, colStop). All bounds normalize
// against rows+1 / cols+1, so stop == Rows() is expressible as -1. A stop
// before its start is ErrDimensionMismatch.
func (m *IntegerMatrix) Submatrix(rowStart, colStart, rowStop, colStop int) (*IntegerMatrix, error) {
	var err error
	if rowStart, err = stopIndex(rowStart, m.rows); err != nil {
		return nil, err
	}
	if rowStop, err = stopIndex(rowStop, m.rows); err != nil {
		return nil, err
	}
	if colStart, err = stopIndex(colStart, m.cols); err != nil {
		return nil, err
	}
	if colStop, err = stopIndex(colStop, m.cols); err != nil {
		return nil, err
	}
	if rowStop < rowStart || colStop < colStart {
		return nil, fmt.Errorf("cannot Submatrix [%d:%d, %d:%d]: %w", rowStart, rowStop, colStart, colStop, ErrDimensionMismatch)
	}
	sub, err := New(rowStop-rowStart, colStop-colStart)
	if err != nil {
		return nil, err
	}
	for i := rowStart; i < rowStop; i++ {
		for j := colStart; j < colStop; j++ {
			sub.at(i-rowStart, j-colStart).Set(m.at(i, j))
		}
	}
	return sub, nil
}

// Select returns the len(rows) x len(cols) matrix with entry (i, j) equal to
// m[rows[i], cols[j]]. Index lists may repeat and need not be monotonic; the
// result follows the requested order exactly. Each index is normalized and
// bounds-checked.
func (m *IntegerMatrix) Select(rows, cols []int) (*IntegerMatrix, error) {
	ri := make([]int, len(rows))
	ci := make([]int, len(cols))
	var err error
	for k, i := range rows {
		if ri[k], err = m.rowIndex(i); err != nil {
			return nil, err
		}
	}
	for k, j := range cols {
		if ci[k], err = m.colIndex(j); err != nil {
			return nil, err
		}
	}
	sub, err := New(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for a, i := range ri {
		for b, j := range ci {
			sub.at(a, b).Set(m.at(i, j))
		}
	}
	return sub, nil
}

// ApplyTransform overwrites rows [startRow, startRow+u.Rows()) of m with
// u x S, where S is the submatrix of those same rows over all columns. This
// applies a unimodular-style row transform to a sub-block of a larger basis,
// in place. The block must fit within m and u must be compatible with it,
// else ErrDimensionMismatch.
func (m *IntegerMatrix) ApplyTransform(u *IntegerMatrix, startRow int) error {
	if startRow < 0 {
		startRow += m.rows
	}
	if startRow < 0 || startRow+u.rows > m.rows {
		return fmt.Errorf("cannot ApplyTransform of %d rows at row %d of %d: %w", u.rows, startRow, m.rows, ErrDimensionMismatch)
	}
	s, err := m.Submatrix(startRow, 0, startRow+u.rows, m.cols)
	if err != nil {
		return err
	}
	b, err := Mul(u, s)
	if err != nil {
		return err
	}
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			m.at(startRow+i, j).Set(b.at(i, j))
		}
	}
	return nil
}
