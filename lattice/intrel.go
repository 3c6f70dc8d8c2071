package lattice

import (
	"context"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/sampling"
)

// IntRelSampler builds a knapsack-type integer-relation basis on a
// d x (d+1) matrix: the identity in the first d columns and a random
// Bits-bit value in the last column of each row.
type IntRelSampler struct {
	baseSampler
	X IntRel
}

// Read fills m, overwriting all entries.
func (s *IntRelSampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *IntRelSampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *IntRelSampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols-1; j++ {
			if i == j {
				setInt64(m, i, j, 1)
			} else {
				setInt64(m, i, j, 0)
			}
		}
		if cols > 0 {
			set(m, i, cols-1, sampling.RandomBits(s.prng, s.X.Bits))
		}
	}
	return nil
}
