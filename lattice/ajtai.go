package lattice

import (
	"context"
	"math"
	"math/big"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/sampling"
)

// AjtaiSampler builds an Ajtai-style basis on a d x d matrix. Diagonal entry
// i is a random positive integer of floor((2d-i)^Alpha) bits, so the
// diagonal decreases roughly exponentially along the basis; the entries
// below the diagonal in column i are random fillers bounded by half the
// diagonal entry, sign included. The rest is zero. The resulting bases have
// large orthogonality defect and are standard worst-case reduction
// benchmarks.
type AjtaiSampler struct {
	baseSampler
	X Ajtai
}

// Read fills m, overwriting all entries.
func (s *AjtaiSampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *AjtaiSampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *AjtaiSampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	d := rows
	one := big.NewInt(1)

	for i := 0; i < d; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i >= cols {
			break
		}

		bits := int(math.Pow(float64(2*d-i), s.X.Alpha))
		if bits < 1 {
			bits = 1
		}

		diag := sampling.RandomIntBelow(s.prng, new(big.Int).Lsh(one, uint(bits)))
		if diag.Sign() == 0 {
			diag.SetInt64(1)
		}
		set(m, i, i, diag)

		// Zero above the diagonal, random filler below, bounded by half
		// the diagonal entry of the column.
		half := new(big.Int).Rsh(diag, 1)
		bound := new(big.Int).Add(half, one)
		for j := i + 1; j < d; j++ {
			v := sampling.RandomIntBelow(s.prng, bound)
			if sampling.RandomSign(s.prng) < 0 {
				v.Neg(v)
			}
			set(m, j, i, v)
			if j < cols {
				setInt64(m, i, j, 0)
			}
		}
	}
	return nil
}
