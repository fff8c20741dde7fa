// Package bitio provides the byte-level reading primitives DWG decoding is
// built on: bounds-checked little-endian scalar reads, bounded slicing, and
// the two CRC variants the format uses to validate sections and objects.
//
// Every read is bounds-checked; a read past the end of the underlying slice
// returns errs.ErrTruncated rather than panicking. This mirrors the
// teacher's convention of returning a sentinel error for every malformed- or
// short-input case instead of trusting caller-supplied lengths.
package bitio

import (
	"math"

	"github.com/cadkit/dwgread/endian"
	"github.com/cadkit/dwgread/errs"
)

// littleEndian and bigEndian are the two byte orders the format mixes:
// every typed field is little-endian except the handle-section subsection
// length prefix and trailing CRC, which the format's page-table heritage
// carries over as big-endian.
var (
	littleEndian = endian.GetLittleEndianEngine()
	bigEndian    = endian.GetBigEndianEngine()
)

// Reader wraps an immutable byte slice with a cursor, exposing bounds-checked
// little-endian scalar reads and bounded slicing. It never copies the
// underlying slice; returned sub-slices alias it.
type Reader struct {
	buf []byte
	pos int
}

// New returns a Reader positioned at the start of buf.
func New(buf []byte) *Reader { return &Reader{buf: buf} }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Pos returns the current absolute byte offset.
func (r *Reader) Pos() int { return r.pos }

// Seek moves the cursor to an absolute byte offset. It does not validate
// that off is within range; the next read will fail with ErrTruncated if
// it isn't.
func (r *Reader) Seek(off int) { r.pos = off }

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return errs.ErrTruncated
	}
	r.pos += n
	return nil
}

// Bytes returns the next n bytes and advances the cursor. The returned
// slice aliases the underlying buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, errs.ErrTruncated
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return littleEndian.Uint16(b), nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return littleEndian.Uint32(b), nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return littleEndian.Uint64(b), nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F64 reads a little-endian IEEE-754 double.
func (r *Reader) F64() (float64, error) {
	v, err := r.U64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// BEU16 reads a big-endian uint16, used by the handle-section subsection
// length prefixes and a handful of other big-endian fields the format
// carries over from its page-table layout.
func (r *Reader) BEU16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return bigEndian.Uint16(b), nil
}
