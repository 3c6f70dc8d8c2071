package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latmath/zzmat/matrix"
)

// denseMatrix fills a rows x cols matrix with deterministic, sign-varying
// values so that kernel tests exercise carries and negatives without
// depending on a PRNG.
func denseMatrix(t *testing.T, rows, cols, salt int) *matrix.IntegerMatrix {
	t.Helper()
	values := make([]int, rows*cols)
	for k := range values {
		values[k] = (k+salt)*(k+salt)*7 - 11*k - salt*13
	}
	m, err := matrix.NewFromIntSlice(rows, cols, values)
	require.NoError(t, err)
	return m
}

func TestMul(t *testing.T) {

	t.Run("Known", func(t *testing.T) {
		a, err := matrix.NewFromSlices([][]int{{1, 2}, {3, 4}})
		require.NoError(t, err)
		b, err := matrix.NewFromSlices([][]int{{5, 6}, {7, 8}})
		require.NoError(t, err)
		c, err := matrix.Mul(a, b)
		require.NoError(t, err)
		want, err := matrix.NewFromSlices([][]int{{19, 22}, {43, 50}})
		require.NoError(t, err)
		require.True(t, c.Equal(want))
	})

	t.Run("Shapes", func(t *testing.T) {
		a := denseMatrix(t, 2, 3, 1)
		b := denseMatrix(t, 3, 4, 2)
		c, err := matrix.Mul(a, b)
		require.NoError(t, err)
		rows, cols := c.Dims()
		require.Equal(t, 2, rows)
		require.Equal(t, 4, cols)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		a := denseMatrix(t, 2, 3, 1)
		b := denseMatrix(t, 2, 3, 2)
		_, err := matrix.Mul(a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("Associativity", func(t *testing.T) {
		a := denseMatrix(t, 3, 4, 1)
		b := denseMatrix(t, 4, 2, 2)
		c := denseMatrix(t, 2, 5, 3)

		ab, err := matrix.Mul(a, b)
		require.NoError(t, err)
		left, err := matrix.Mul(ab, c)
		require.NoError(t, err)

		bc, err := matrix.Mul(b, c)
		require.NoError(t, err)
		right, err := matrix.Mul(a, bc)
		require.NoError(t, err)

		require.True(t, left.Equal(right))
	})

	t.Run("IdentityNeutral", func(t *testing.T) {
		a := denseMatrix(t, 3, 3, 4)
		id, err := matrix.NewIdentity(3)
		require.NoError(t, err)
		c, err := matrix.Mul(id, a)
		require.NoError(t, err)
		require.True(t, c.Equal(a))
	})
}

func TestMod(t *testing.T) {

	q := big.NewInt(7)

	t.Run("CenteredRange", func(t *testing.T) {
		m, err := matrix.NewFromIntSlice(1, 9, []int{-9, -4, -3, 0, 3, 4, 7, 10, 11})
		require.NoError(t, err)
		require.NoError(t, m.Mod(q))
		want, err := matrix.NewFromIntSlice(1, 9, []int{-2, 3, -3, 0, 3, -3, 0, 3, -3})
		require.NoError(t, err)
		require.True(t, m.Equal(want))
	})

	t.Run("EvenModulus", func(t *testing.T) {
		// q = 8: representatives lie in (-4, 4], so 4 stays and 5 maps
		// to -3.
		m, err := matrix.NewFromIntSlice(1, 3, []int{4, 5, -4})
		require.NoError(t, err)
		require.NoError(t, m.Mod(big.NewInt(8)))
		want, err := matrix.NewFromIntSlice(1, 3, []int{4, -3, 4})
		require.NoError(t, err)
		require.True(t, m.Equal(want))
	})

	t.Run("Idempotent", func(t *testing.T) {
		m := denseMatrix(t, 4, 4, 5)
		require.NoError(t, m.Mod(q))
		once := m.CopyNew()
		require.NoError(t, m.Mod(q))
		require.True(t, m.Equal(once))
	})

	t.Run("NonPositiveModulus", func(t *testing.T) {
		m := denseMatrix(t, 2, 2, 1)
		require.ErrorIs(t, m.Mod(big.NewInt(0)), matrix.ErrNonPositiveModulus)
		require.ErrorIs(t, m.Mod(big.NewInt(-7)), matrix.ErrNonPositiveModulus)
	})

	t.Run("RangeMasksIndependent", func(t *testing.T) {
		m, err := matrix.NewFromIntSlice(3, 3, []int{
			10, 10, 10,
			10, 10, 10,
			10, 10, 10,
		})
		require.NoError(t, err)
		// Rows [1, 3) x cols [0, 2): only that block reduces.
		require.NoError(t, m.ModRange(q, 1, 0, 3, 2))
		want, err := matrix.NewFromIntSlice(3, 3, []int{
			10, 10, 10,
			3, 3, 10,
			3, 3, 10,
		})
		require.NoError(t, err)
		require.True(t, m.Equal(want))
	})

	t.Run("NegativeStopsMeanEnd", func(t *testing.T) {
		a := denseMatrix(t, 3, 4, 2)
		b := a.CopyNew()
		require.NoError(t, a.Mod(q))
		require.NoError(t, b.ModRange(q, 0, 0, -1, -1))
		require.True(t, a.Equal(b))
	})

	t.Run("ModNew", func(t *testing.T) {
		m := denseMatrix(t, 2, 3, 7)
		orig := m.CopyNew()
		reduced, err := m.ModNew(q)
		require.NoError(t, err)
		require.True(t, m.Equal(orig))
		require.False(t, reduced.Equal(orig))
	})
}

func TestSubmatrix(t *testing.T) {

	m, err := matrix.NewFromSlices([][]int{
		{0, 1, 2, 3},
		{10, 11, 12, 13},
		{20, 21, 22, 23},
	})
	require.NoError(t, err)

	t.Run("Block", func(t *testing.T) {
		sub, err := m.Submatrix(1, 1, 3, 3)
		require.NoError(t, err)
		want, err := matrix.NewFromSlices([][]int{{11, 12}, {21, 22}})
		require.NoError(t, err)
		require.True(t, sub.Equal(want))
	})

	t.Run("NegativeStops", func(t *testing.T) {
		sub, err := m.Submatrix(1, 0, -1, -1)
		require.NoError(t, err)
		want, err := matrix.NewFromSlices([][]int{
			{10, 11, 12, 13},
			{20, 21, 22, 23},
		})
		require.NoError(t, err)
		require.True(t, sub.Equal(want))
	})

	t.Run("StopBeforeStart", func(t *testing.T) {
		_, err := m.Submatrix(2, 0, 1, 4)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = m.Submatrix(0, 3, 3, 1)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("Empty", func(t *testing.T) {
		sub, err := m.Submatrix(1, 1, 1, 1)
		require.NoError(t, err)
		rows, cols := sub.Dims()
		require.Zero(t, rows)
		require.Zero(t, cols)
	})

	t.Run("DeepCopy", func(t *testing.T) {
		sub, err := m.Submatrix(0, 0, 1, 1)
		require.NoError(t, err)
		require.NoError(t, sub.Set(0, 0, 99))
		v, err := m.Get(0, 0)
		require.NoError(t, err)
		require.Equal(t, int64(0), v.Int64())
	})

	t.Run("Slice", func(t *testing.T) {
		s, err := m.Slice(1, 2)
		require.NoError(t, err)
		want, err := matrix.NewFromSlices([][]int{{10, 11, 12, 13}})
		require.NoError(t, err)
		require.True(t, s.Equal(want))

		all, err := m.Slice(0, -1)
		require.NoError(t, err)
		require.True(t, all.Equal(m))
	})
}

func TestSelect(t *testing.T) {

	m, err := matrix.NewFromSlices([][]int{
		{0, 1, 2},
		{10, 11, 12},
		{20, 21, 22},
	})
	require.NoError(t, err)

	t.Run("RequestedOrder", func(t *testing.T) {
		sub, err := m.Select([]int{2, 0}, []int{0, 1, 2})
		require.NoError(t, err)
		want, err := matrix.NewFromSlices([][]int{{20, 21, 22}, {0, 1, 2}})
		require.NoError(t, err)
		require.True(t, sub.Equal(want))
	})

	t.Run("Duplicates", func(t *testing.T) {
		sub, err := m.Select([]int{1, 1}, []int{2, 2, 0})
		require.NoError(t, err)
		want, err := matrix.NewFromSlices([][]int{{12, 12, 10}, {12, 12, 10}})
		require.NoError(t, err)
		require.True(t, sub.Equal(want))
	})

	t.Run("NegativeIndices", func(t *testing.T) {
		sub, err := m.Select([]int{-1}, []int{-1})
		require.NoError(t, err)
		v, err := sub.Get(0, 0)
		require.NoError(t, err)
		require.Equal(t, int64(22), v.Int64())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := m.Select([]int{3}, []int{0})
		require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
		_, err = m.Select([]int{0}, []int{-4})
		require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	})
}

func TestApplyTransform(t *testing.T) {

	t.Run("SubBlock", func(t *testing.T) {
		m, err := matrix.NewFromSlices([][]int{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		})
		require.NoError(t, err)

		u, err := matrix.NewFromSlices([][]int{{0, 1}, {1, 1}})
		require.NoError(t, err)

		require.NoError(t, m.ApplyTransform(u, 1))

		// Row 0 untouched; rows 1 and 2 replaced by U x S.
		want, err := matrix.NewFromSlices([][]int{
			{1, 2, 3},
			{7, 8, 9},
			{11, 13, 15},
		})
		require.NoError(t, err)
		require.True(t, m.Equal(want))
	})

	t.Run("FullMatrix", func(t *testing.T) {
		m := denseMatrix(t, 3, 3, 2)
		u, err := matrix.NewIdentity(3)
		require.NoError(t, err)
		before := m.CopyNew()
		require.NoError(t, m.ApplyTransform(u, 0))
		require.True(t, m.Equal(before))
	})

	t.Run("BlockExceedsMatrix", func(t *testing.T) {
		m := denseMatrix(t, 3, 3, 2)
		u, err := matrix.NewIdentity(2)
		require.NoError(t, err)
		require.ErrorIs(t, m.ApplyTransform(u, 2), matrix.ErrDimensionMismatch)
	})
}
