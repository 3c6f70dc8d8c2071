package sampling

import (
	"encoding/binary"
	"math/big"
)

// RandomUint64 returns a uniform value in [0, 0xFFFFFFFFFFFFFFFF] drawn
// from prng.
func RandomUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandomBits returns a uniform integer in [0, 2^bits) drawn from prng.
// bits <= 0 yields zero.
func RandomBits(prng PRNG, bits int) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	buf := make([]byte, (bits+7)>>3)
	if _, err := prng.Read(buf); err != nil {
		panic(err)
	}
	// Clears the excess high bits of the leading byte.
	if excess := uint(len(buf)<<3 - bits); excess > 0 {
		buf[0] &= 0xFF >> excess
	}
	return new(big.Int).SetBytes(buf)
}

// RandomIntBelow returns a uniform integer in [0, max) drawn from prng,
// using rejection sampling over max.BitLen()-bit draws.
func RandomIntBelow(prng PRNG, max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		panic("sampling: max must be > 0")
	}
	bits := max.BitLen()
	for {
		if v := RandomBits(prng, bits); v.Cmp(max) < 0 {
			return v
		}
	}
}

// RandomSign returns -1 or 1, each with probability 1/2.
func RandomSign(prng PRNG) int {
	b := []byte{0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	if b[0]&1 == 1 {
		return -1
	}
	return 1
}
