package lattice

import (
	"context"
	"math/big"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/sampling"
)

// NTRULikeSampler builds an NTRU-like basis on a 2d x 2d matrix from a
// random degree-d polynomial h of Bits-bit coefficients reduced modulo Q.
// The rotation block H has H[i][j] = h[(i+j) mod d]. Block placement is
// [[I, H], [0, qI]], or [[qI, 0], [H, I]] for the ntrulike2 variant.
type NTRULikeSampler struct {
	baseSampler
	bits    int
	q       *big.Int
	variant bool
}

// Read fills m, overwriting all entries.
func (s *NTRULikeSampler) Read(m *matrix.IntegerMatrix) error {
	return s.read(context.Background(), m)
}

// ReadWithContext fills m, checking ctx between rows.
func (s *NTRULikeSampler) ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error {
	return s.read(ctx, m)
}

func (s *NTRULikeSampler) read(ctx context.Context, m *matrix.IntegerMatrix) error {
	rows, cols := m.Dims()
	d := rows / 2

	// h is drawn up front so that both block layouts consume the PRNG
	// stream identically.
	h := make([]*big.Int, d)
	for k := range h {
		h[k] = sampling.RandomBits(s.prng, s.bits)
		if s.q.Sign() > 0 {
			h[k].Mod(h[k], s.q)
		}
	}

	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			set(m, i, j, s.entry(h, d, i, j))
		}
	}
	return nil
}

// entry returns the value of cell (i, j) for the block structure
// [[I, H], [0, qI]], or its ntrulike2 mirror [[qI, 0], [H, I]].
func (s *NTRULikeSampler) entry(h []*big.Int, d, i, j int) *big.Int {
	if s.variant {
		switch {
		case i < d && j < d && i == j:
			return s.q
		case i >= d && j < d:
			return h[((i-d)+j)%d]
		case i >= d && j >= d && i == j:
			return big.NewInt(1)
		default:
			return new(big.Int)
		}
	}
	switch {
	case i < d && j < d && i == j:
		return big.NewInt(1)
	case i < d && j >= d:
		return h[(i+(j-d))%d]
	case i >= d && j >= d && i == j:
		return s.q
	default:
		return new(big.Int)
	}
}
