// Package bignum implements helpers for arbitrary-precision arithmetic over
// math/big values.
package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {
	var err error
	if y, err = ParseInt(x); err != nil {
		panic(err)
	}
	return
}

// ParseInt converts x to a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
// A nil x yields zero. Unsupported types and unparseable strings return an
// error.
func ParseInt(x interface{}) (y *big.Int, err error) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		if _, ok := y.SetString(x, 0); !ok {
			return nil, fmt.Errorf("cannot ParseInt: invalid integer literal %q", x)
		}
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		return nil, fmt.Errorf("cannot ParseInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x)
	}

	return
}

// CenterMod sets z to the representative of v modulo q lying in (-q/2, q/2]
// and returns z. qHalf must be floor(q/2). q must be positive.
func CenterMod(z, v, q, qHalf *big.Int) *big.Int {
	z.Mod(v, q)
	if z.Cmp(qHalf) > 0 {
		z.Sub(z, q)
	}
	return z
}

// DivRound sets the target i to round(a/b).
func DivRound(a, b, i *big.Int) {
	_a := new(big.Int).Set(a)
	i.Quo(_a, b)
	r := new(big.Int).Rem(_a, b)
	r2 := new(big.Int).Mul(r, NewInt(2))
	if r2.CmpAbs(b) != -1 {
		if _a.Sign() == b.Sign() {
			i.Add(i, NewInt(1))
		} else {
			i.Sub(i, NewInt(1))
		}
	}
}
