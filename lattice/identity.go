package lattice

import (
	"context"

	"github.com/latmath/zzmat/matrix"
)

// IdentitySampler overwrites the matrix with the identity over its N x N
// prefix and zero elsewhere. N <= 0 or N larger than the matrix means the
// full square prefix min(rows, cols). It draws no randomness.
type IdentitySampler struct {
	X Identity
}

// Read fills m, overwriting all entries.
func (s *IdentitySampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *IdentitySampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *IdentitySampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	n := s.X.N
	if n <= 0 || n > rows {
		n = rows
	}
	if n > cols {
		n = cols
	}
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			if i == j && i < n {
				setInt64(m, i, j, 1)
			} else {
				setInt64(m, i, j, 0)
			}
		}
	}
	return nil
}
