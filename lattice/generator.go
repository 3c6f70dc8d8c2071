// Package lattice implements deterministic generators of structured random
// lattice bases over IntegerMatrix: knapsack-type integer relations,
// simultaneous diophantine approximation, NTRU-like and q-ary bases, and
// Ajtai-style bases with large orthogonality defect.
//
// All randomness flows through an injected sampling.PRNG, so a fixed seed
// reproduces a fixed matrix. Shape preconditions are the caller's
// responsibility: a mismatched shape yields an algorithm-defined but
// well-formed result, never a crash.
package lattice

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/latmath/zzmat/matrix"
	"github.com/latmath/zzmat/utils/bignum"
	"github.com/latmath/zzmat/utils/sampling"
)

const (
	uniformName   = "uniform"
	intRelName    = "intrel"
	simDiophName  = "simdioph"
	ntruLikeName  = "ntrulike"
	ntruLike2Name = "ntrulike2"
	ajtaiName     = "ajtai"
	qaryName      = "qary"
	identityName  = "identity"
)

// ErrUnknownGenerator is returned by ParametersByName for an unrecognized
// generator-algorithm name.
var ErrUnknownGenerator = errors.New("lattice: unknown generator algorithm")

// GeneratorParameters is an interface for the parameters of a lattice-basis
// generator. Implementations are Uniform, IntRel, SimDioph, NTRULike,
// NTRULike2, Ajtai, QAry and Identity.
type GeneratorParameters interface {
	// Type returns a string representation of the generator name.
	Type() string
	mustBeGen()
}

// Sampler is an interface for generators filling a matrix in place,
// overwriting all entries. Read runs to completion; ReadWithContext checks
// ctx between rows, so long-running calls can be interrupted from outside.
// Every entry write is complete in itself: cancellation can leave some
// entries already overwritten, but never a malformed matrix.
type Sampler interface {
	Read(m *matrix.IntegerMatrix) error
	ReadWithContext(ctx context.Context, m *matrix.IntegerMatrix) error
}

// Uniform fills every entry independently and uniformly from [0, 2^Bits).
type Uniform struct {
	Bits int
}

// IntRel expects a d x (d+1) matrix and encodes a random integer relation:
// identity in the first d columns, a random Bits-bit value in the last
// column.
type IntRel struct {
	Bits int
}

// SimDioph expects a d x d matrix and builds a simultaneous diophantine
// approximation basis: B[0][0] = 2^Bits2, random Bits-bit entries on the
// rest of the first row, 2^Bits on the remaining diagonal.
type SimDioph struct {
	Bits  int
	Bits2 int
}

// NTRULike expects a 2d x 2d matrix and builds an NTRU-like basis
// [[I, H], [0, qI]] from a random polynomial h of Bits-bit coefficients
// reduced modulo Q, with H[i][j] = h[(i+j) mod d].
type NTRULike struct {
	Bits int
	Q    *big.Int
}

// NTRULike2 is the structural variant of NTRULike with the blocks placed as
// [[qI, 0], [H, I]].
type NTRULike2 struct {
	Bits int
	Q    *big.Int
}

// Ajtai expects a d x d matrix and builds an Ajtai-style basis: diagonal
// entry i is a random positive integer of floor((2d-i)^Alpha) bits, entries
// below the diagonal are random fillers bounded by half the diagonal entry
// of their column. The resulting bases have large orthogonality defect.
type Ajtai struct {
	Alpha float64
}

// QAry expects a d x d matrix and builds a q-ary basis [[I_k, H], [0, qI]]
// with H uniform modulo Q over the k x (d-k) upper-right block.
type QAry struct {
	K int
	Q *big.Int
}

// Identity sets the matrix to the N x N identity over its square prefix.
// N <= 0 means min(rows, cols).
type Identity struct {
	N int
}

func (Uniform) Type() string   { return uniformName }
func (Uniform) mustBeGen()     {}
func (IntRel) Type() string    { return intRelName }
func (IntRel) mustBeGen()      {}
func (SimDioph) Type() string  { return simDiophName }
func (SimDioph) mustBeGen()    {}
func (NTRULike) Type() string  { return ntruLikeName }
func (NTRULike) mustBeGen()    {}
func (NTRULike2) Type() string { return ntruLike2Name }
func (NTRULike2) mustBeGen()   {}
func (Ajtai) Type() string     { return ajtaiName }
func (Ajtai) mustBeGen()       {}
func (QAry) Type() string      { return qaryName }
func (QAry) mustBeGen()        {}
func (Identity) Type() string  { return identityName }
func (Identity) mustBeGen()    {}

// NewSampler instantiates the Sampler matching the given parameters, drawing
// its randomness from prng.
func NewSampler(prng sampling.PRNG, X GeneratorParameters) (Sampler, error) {
	switch X := X.(type) {
	case Uniform:
		return &UniformSampler{baseSampler{prng}, X}, nil
	case IntRel:
		return &IntRelSampler{baseSampler{prng}, X}, nil
	case SimDioph:
		return &SimDiophSampler{baseSampler{prng}, X}, nil
	case NTRULike:
		return &NTRULikeSampler{baseSampler{prng}, X.Bits, orZero(X.Q), false}, nil
	case NTRULike2:
		return &NTRULikeSampler{baseSampler{prng}, X.Bits, orZero(X.Q), true}, nil
	case Ajtai:
		return &AjtaiSampler{baseSampler{prng}, X}, nil
	case QAry:
		return &QArySampler{baseSampler{prng}, X.K, orZero(X.Q)}, nil
	case Identity:
		return &IdentitySampler{X}, nil
	default:
		return nil, fmt.Errorf("invalid parameters: want lattice.Uniform, lattice.IntRel, lattice.SimDioph, lattice.NTRULike, lattice.NTRULike2, lattice.Ajtai, lattice.QAry or lattice.Identity but have %T", X)
	}
}

// ParametersByName builds GeneratorParameters from a generator name and a
// string-keyed argument map, for drivers that select the algorithm at run
// time. Recognized argument keys are "bits", "bits2", "q", "alpha", "k" and
// "n". An unrecognized name is ErrUnknownGenerator.
func ParametersByName(name string, args map[string]interface{}) (GeneratorParameters, error) {
	switch name {
	case uniformName:
		return Uniform{Bits: intArg(args, "bits")}, nil
	case intRelName:
		return IntRel{Bits: intArg(args, "bits")}, nil
	case simDiophName:
		return SimDioph{Bits: intArg(args, "bits"), Bits2: intArg(args, "bits2")}, nil
	case ntruLikeName:
		q, err := modulusArg(args)
		if err != nil {
			return nil, err
		}
		return NTRULike{Bits: intArg(args, "bits"), Q: q}, nil
	case ntruLike2Name:
		q, err := modulusArg(args)
		if err != nil {
			return nil, err
		}
		return NTRULike2{Bits: intArg(args, "bits"), Q: q}, nil
	case ajtaiName:
		return Ajtai{Alpha: floatArg(args, "alpha")}, nil
	case qaryName:
		q, err := modulusArg(args)
		if err != nil {
			return nil, err
		}
		return QAry{K: intArg(args, "k"), Q: q}, nil
	case identityName:
		return Identity{N: intArg(args, "n")}, nil
	default:
		return nil, fmt.Errorf("cannot ParametersByName %q: %w", name, ErrUnknownGenerator)
	}
}

func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	default:
		return 0
	}
}

func floatArg(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func modulusArg(args map[string]interface{}) (*big.Int, error) {
	v, ok := args["q"]
	if !ok {
		return nil, fmt.Errorf("missing argument %q", "q")
	}
	q, err := bignum.ParseInt(v)
	if err != nil {
		return nil, fmt.Errorf("invalid argument %q: %w", "q", err)
	}
	return q, nil
}

type baseSampler struct {
	prng sampling.PRNG
}

func orZero(q *big.Int) *big.Int {
	if q == nil {
		return new(big.Int)
	}
	return q
}

// set writes v at (i, j). Samplers only compute in-range indices, so a
// failure here is a programmer error.
func set(m *matrix.IntegerMatrix, i, j int, v *big.Int) {
	if err := m.Set(i, j, v); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
}

// setInt64 writes v at (i, j).
func setInt64(m *matrix.IntegerMatrix, i, j int, v int64) {
	if err := m.Set(i, j, v); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
}
