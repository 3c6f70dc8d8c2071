package matrix

import (
	"fmt"
	"io"

	"github.com/latmath/zzmat/utils/buffer"
)

// BinarySize returns the serialized size of the matrix in bytes: two 8-byte
// dimensions followed by every entry in row-major order.
func (m *IntegerMatrix) BinarySize() (size int) {
	size = 16
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			size += buffer.BigIntBinarySize(&m.d[i][j])
		}
	}
	return
}

// WriteTo writes the matrix on w. It implements the io.WriterTo interface.
func (m *IntegerMatrix) WriteTo(w io.Writer) (n int64, err error) {

	var inc int64
	if inc, err = buffer.WriteUint64(w, uint64(m.rows)); err != nil {
		return n + inc, err
	}
	n += inc

	if inc, err = buffer.WriteUint64(w, uint64(m.cols)); err != nil {
		return n + inc, err
	}
	n += inc

	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if inc, err = buffer.WriteBigInt(w, &m.d[i][j]); err != nil {
				return n + inc, err
			}
			n += inc
		}
	}
	return n, nil
}

// ReadFrom reads a matrix written by WriteTo from r, replacing the receiver's
// shape and contents. It implements the io.ReaderFrom interface.
func (m *IntegerMatrix) ReadFrom(r io.Reader) (n int64, err error) {

	var rows, cols uint64
	var inc int64
	if inc, err = buffer.ReadUint64(r, &rows); err != nil {
		return n + inc, err
	}
	n += inc

	if inc, err = buffer.ReadUint64(r, &cols); err != nil {
		return n + inc, err
	}
	n += inc

	if int64(rows) < 0 || int64(cols) < 0 {
		return n, fmt.Errorf("cannot ReadFrom with shape %d x %d: %w", rows, cols, ErrInvalidShape)
	}

	m.d = nil
	m.rows, m.cols = 0, 0
	m.resize(int(rows), int(cols))

	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if inc, err = buffer.ReadBigInt(r, &m.d[i][j]); err != nil {
				return n + inc, err
			}
			n += inc
		}
	}
	return n, nil
}

// MarshalBinary encodes the matrix on a byte slice.
func (m *IntegerMatrix) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(m.BinarySize())
	if _, err = m.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a byte slice generated by MarshalBinary on the
// receiver.
func (m *IntegerMatrix) UnmarshalBinary(data []byte) (err error) {
	_, err = m.ReadFrom(buffer.NewBuffer(data))
	return
}
