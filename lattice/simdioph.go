package lattice

import (
	"context"
	"math/big"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/sampling"
)

// SimDiophSampler builds a simultaneous diophantine approximation basis on a
// d x d matrix: B[0][0] = 2^Bits2, random Bits-bit entries on the rest of
// the first row, 2^Bits on the remaining diagonal, zero elsewhere.
type SimDiophSampler struct {
	baseSampler
	X SimDioph
}

// Read fills m, overwriting all entries.
func (s *SimDiophSampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *SimDiophSampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *SimDiophSampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	one := big.NewInt(1)
	scale := new(big.Int).Lsh(one, uint(s.X.Bits))
	scale2 := new(big.Int).Lsh(one, uint(s.X.Bits2))
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			switch {
			case i == 0 && j == 0:
				set(m, i, j, scale2)
			case i == 0:
				set(m, i, j, sampling.RandomBits(s.prng, s.X.Bits))
			case i == j:
				set(m, i, j, scale)
			default:
				setInt64(m, i, j, 0)
			}
		}
	}
	return nil
}
