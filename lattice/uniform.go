package lattice

import (
	"context"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/sampling"
)

// UniformSampler fills every entry independently and uniformly from
// [0, 2^Bits).
type UniformSampler struct {
	baseSampler
	X Uniform
}

// Read fills m, overwriting all entries.
func (s *UniformSampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *UniformSampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *UniformSampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			set(m, i, j, sampling.RandomBits(s.prng, s.X.Bits))
		}
	}
	return nil
}
