// Package sampling implements deterministic and secure generation of random
// bytes and arbitrary-precision integers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand. It is safe for concurrent
// use but not reproducible.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads random bytes from crypto/rand into sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to *deterministically*
// generate a sequence of random bytes using the hash function blake2b. Two
// KeyedPRNG instantiated with the same key produce the same stream of bytes.
// WARNING: KeyedPRNG should NOT be shared between threads: the resulting
// sequence would not be deterministic for a given key.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewSeededPRNG creates a KeyedPRNG from a 64-bit seed. The seed is expanded
// to a 32-byte key with blake3 so that small integer seeds still provide a
// full-size XOF key. Reseeding is explicit: construct a new instance.
func NewSeededPRNG(seed uint64) (*KeyedPRNG, error) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	key := blake3.Sum256(b[:])
	return NewKeyedPRNG(key[:])
}

// Key returns a copy of the key used to seed the PRNG. This value can be
// used with NewKeyedPRNG to instantiate a new PRNG that will produce the
// same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
