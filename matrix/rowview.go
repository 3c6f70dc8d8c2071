package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// RowView is a read-only, non-owning reference to one row of an
// IntegerMatrix. It holds a back-reference to the matrix and must not
// outlive it; this is a lifetime contract, not an enforced property. Writes
// through a view are rejected with ErrReadOnlyView.
type RowView struct {
	m *IntegerMatrix
	i int
}

// Row returns a view over row i. Negative indices count from the end,
// normalized once; the index is validated against the row count at
// construction time.
func (m *IntegerMatrix) Row(i int) (RowView, error) {
	i, err := m.rowIndex(i)
	if err != nil {
		return RowView{}, err
	}
	return RowView{m: m, i: i}, nil
}

// Len returns the number of elements in the row.
func (v RowView) Len() int {
	return v.m.cols
}

// Get returns a copy of the element at column j. Negative indices count
// from the end, normalized once.
func (v RowView) Get(j int) (*big.Int, error) {
	j, err := v.m.colIndex(j)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v.m.at(v.i, j)), nil
}

// Set always returns ErrReadOnlyView: element assignment through a view is
// not part of the contract. Mutate through the owning matrix instead.
func (v RowView) Set(j int, x interface{}) error {
	return fmt.Errorf("cannot Set column %d through a view: %w", j, ErrReadOnlyView)
}

// Norm returns the Euclidean norm of the row. The squared norm is
// accumulated exactly over big.Int, with a single square root taken at full
// accumulated precision at the end, so no precision is lost to intermediate
// rounding.
func (v RowView) Norm() float64 {
	acc := new(big.Int)
	tmp := new(big.Int)
	row := v.m.rowSlice(v.i)
	for j := range row {
		tmp.Mul(&row[j], &row[j])
		acc.Add(acc, tmp)
	}
	prec := uint(acc.BitLen())
	if prec < 64 {
		prec = 64
	}
	f := new(big.Float).SetPrec(prec).SetInt(acc)
	f.Sqrt(f)
	norm, _ := f.Float64()
	return norm
}

// String renders the row as a comma-space-joined parenthesized list:
// (v0, v1, ..., vn-1).
func (v RowView) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	row := v.m.rowSlice(v.i)
	for j := range row {
		if j > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(row[j].String())
	}
	sb.WriteByte(')')
	return sb.String()
}
