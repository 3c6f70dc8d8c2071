package lattice

import (
	"context"
	"math/big"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/sampling"
)

// QArySampler builds a q-ary basis [[I_k, H], [0, qI]] on a d x d matrix,
// with H uniform modulo Q over the k x (d-k) upper-right block. Lattices of
// this form arise from random linear codes modulo q and from Ajtai-type
// hardness constructions.
type QArySampler struct {
	baseSampler
	k int
	q *big.Int
}

// Read fills m, overwriting all entries.
func (s *QArySampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *QArySampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *QArySampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	k := s.k
	if k < 0 {
		k = 0
	}
	if k > rows {
		k = rows
	}
	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			switch {
			case i < k && j < k && i == j:
				setInt64(m, i, j, 1)
			case i < k && j >= k:
				if s.q.Sign() > 0 {
					set(m, i, j, sampling.RandomIntBelow(s.prng, s.q))
				} else {
					setInt64(m, i, j, 0)
				}
			case i >= k && i == j:
				set(m, i, j, s.q)
			default:
				setInt64(m, i, j, 0)
			}
		}
	}
	return nil
}
