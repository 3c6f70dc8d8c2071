package lattice

import (
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/bignum"
)

// Profile returns the log2 Euclidean norm of each row of m. Squared norms
// are accumulated exactly over big.Int and the logarithm is taken at full
// accumulated precision, so entries far beyond float64 range still profile
// correctly. A zero row profiles as -Inf.
//
// The slope and spread of the profile are the usual quality measures of a
// generated basis: ajtai-type bases show a steep profile (large
// orthogonality defect), reduced bases a flat one.
func Profile(m *matrix.IntegerMatrix) ([]float64, error) {

	rows, cols := m.Dims()
	profile := make([]float64, rows)

	acc := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < rows; i++ {
		acc.SetInt64(0)
		for j := 0; j < cols; j++ {
			v, err := m.Get(i, j)
			if err != nil {
				return nil, err
			}
			tmp.Mul(v, v)
			acc.Add(acc, tmp)
		}
		if acc.Sign() == 0 {
			profile[i] = math.Inf(-1)
			continue
		}
		prec := uint(acc.BitLen())
		if prec < 64 {
			prec = 64
		}
		log2, _ := bignum.Log2(bignum.NewFloat(acc, prec)).Float64()
		profile[i] = log2 / 2
	}
	return profile, nil
}

// ProfileStats summarizes a basis profile.
type ProfileStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize returns the mean, standard deviation, minimum and maximum of a
// profile returned by Profile.
func Summarize(profile []float64) (ProfileStats, error) {

	mean, err := stats.Mean(profile)
	if err != nil {
		return ProfileStats{}, err
	}
	stddev, err := stats.StandardDeviation(profile)
	if err != nil {
		return ProfileStats{}, err
	}
	min, err := stats.Min(profile)
	if err != nil {
		return ProfileStats{}, err
	}
	max, err := stats.Max(profile)
	if err != nil {
		return ProfileStats{}, err
	}
	return ProfileStats{Mean: mean, StdDev: stddev, Min: min, Max: max}, nil
}
