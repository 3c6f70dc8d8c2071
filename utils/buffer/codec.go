package buffer

import (
	"encoding/binary"
	"io"
	"math/big"
)

// WriteUint64 writes v on w in big-endian order.
func WriteUint64(w io.Writer, v uint64) (n int64, err error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	inc, err := w.Write(b[:])
	return int64(inc), err
}

// ReadUint64 reads a big-endian uint64 from r into v.
func ReadUint64(r io.Reader, v *uint64) (n int64, err error) {
	var b [8]byte
	inc, err := io.ReadFull(r, b[:])
	if err != nil {
		return int64(inc), err
	}
	*v = binary.BigEndian.Uint64(b[:])
	return int64(inc), nil
}

// BigIntBinarySize returns the number of bytes WriteBigInt produces for v:
// one sign byte, an 8-byte length and the absolute-value bytes.
func BigIntBinarySize(v *big.Int) int {
	return 1 + 8 + len(v.Bytes())
}

// WriteBigInt writes v on w as a sign byte (0, 1 or 2 for zero, positive and
// negative), an 8-byte big-endian length and the big-endian absolute-value
// bytes.
func WriteBigInt(w io.Writer, v *big.Int) (n int64, err error) {

	var sign [1]byte
	switch v.Sign() {
	case 1:
		sign[0] = 1
	case -1:
		sign[0] = 2
	}

	inc, err := w.Write(sign[:])
	n += int64(inc)
	if err != nil {
		return n, err
	}

	b := v.Bytes()

	var inc64 int64
	if inc64, err = WriteUint64(w, uint64(len(b))); err != nil {
		return n + inc64, err
	}
	n += inc64

	inc, err = w.Write(b)
	return n + int64(inc), err
}

// ReadBigInt reads a big.Int written by WriteBigInt from r into v.
func ReadBigInt(r io.Reader, v *big.Int) (n int64, err error) {

	var sign [1]byte
	inc, err := io.ReadFull(r, sign[:])
	n += int64(inc)
	if err != nil {
		return n, err
	}

	var size uint64
	var inc64 int64
	if inc64, err = ReadUint64(r, &size); err != nil {
		return n + inc64, err
	}
	n += inc64

	b := make([]byte, size)
	inc, err = io.ReadFull(r, b)
	n += int64(inc)
	if err != nil {
		return n, err
	}

	v.SetBytes(b)
	if sign[0] == 2 {
		v.Neg(v)
	}

	return n, nil
}
