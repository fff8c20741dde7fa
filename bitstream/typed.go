package bitstream

import (
	"math"
	"unicode/utf16"

	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/format"
)

// BS reads a bit-short: a 2-bit tag selecting {16-bit raw, 8-bit raw
// unsigned, the literal 0, or the literal 256}.
func (r *Reader) BS() (uint16, error) {
	tag, err := r.BB()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0:
		return r.rawLE16()
	case 1:
		v, err := r.Bits(8)
		return uint16(v), err
	case 2:
		return 0, nil
	default: // 3
		return 256, nil
	}
}

// BL reads a bit-long: a 2-bit tag selecting {32-bit raw, 8-bit raw, the
// literal 0, or reserved (decodes as 0; no known writer emits it)}.
func (r *Reader) BL() (uint32, error) {
	tag, err := r.BB()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0:
		return r.rawLE32()
	case 1:
		v, err := r.Bits(8)
		return uint32(v), err
	case 2:
		return 0, nil
	default:
		return 0, nil
	}
}

// BLSigned reads a BL and reinterprets it as a signed 32-bit integer, used
// by the fields the format documents as signed bit-longs (e.g. some
// DIMENSION flags).
func (r *Reader) BLSigned() (int32, error) {
	v, err := r.BL()
	return int32(v), err
}

// BD reads a bit-double: a 2-bit tag selecting {a raw IEEE-754 double, the
// literal 1.0, the literal 0.0, or reserved (decodes as 0.0)}.
func (r *Reader) BD() (float64, error) {
	tag, err := r.BB()
	if err != nil {
		return 0, err
	}
	switch tag {
	case 0:
		return r.RD()
	case 1:
		return 1.0, nil
	case 2:
		return 0.0, nil
	default:
		return 0.0, nil
	}
}

// TwoBD reads two consecutive BD values (x, y).
func (r *Reader) TwoBD() (x, y float64, err error) {
	if x, err = r.BD(); err != nil {
		return 0, 0, err
	}
	if y, err = r.BD(); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// ThreeBD reads three consecutive BD values (x, y, z).
func (r *Reader) ThreeBD() (x, y, z float64, err error) {
	if x, y, err = r.TwoBD(); err != nil {
		return 0, 0, 0, err
	}
	if z, err = r.BD(); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

// BE reads a bit-extrusion: a flag bit, then either three bit-doubles or
// the default extrusion vector (0, 0, 1) when the flag is clear.
func (r *Reader) BE() (x, y, z float64, err error) {
	flag, err := r.B()
	if err != nil {
		return 0, 0, 0, err
	}
	if !flag {
		return 0, 0, 1, nil
	}
	return r.ThreeBD()
}

// BT reads a bit-thickness: a flag bit, then either a bit-double or the
// default thickness 0.0 when the flag is clear.
func (r *Reader) BT() (float64, error) {
	flag, err := r.B()
	if err != nil {
		return 0, err
	}
	if !flag {
		return 0, nil
	}
	return r.BD()
}

// DD reads a bit-double-with-default: a 2-bit tag selecting how many bytes
// of defaultValue's bit pattern are overridden by freshly read bytes. This
// lets the format store polyline vertex deltas in as few as zero extra
// bits when a coordinate matches the reference vertex exactly.
func (r *Reader) DD(defaultValue float64) (float64, error) {
	tag, err := r.BB()
	if err != nil {
		return 0, err
	}
	defBits := math.Float64bits(defaultValue)
	switch tag {
	case 0:
		return defaultValue, nil
	case 1:
		low, err := r.rawLE32()
		if err != nil {
			return 0, err
		}
		bits := (defBits &^ 0xFFFFFFFF) | uint64(low)
		return math.Float64frombits(bits), nil
	case 2:
		lo0, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		lo1, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		lo2, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		lo3, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		lo4, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		lo5, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		low48 := uint64(lo0) | uint64(lo1)<<8 | uint64(lo2)<<16 | uint64(lo3)<<24 | uint64(lo4)<<32 | uint64(lo5)<<40
		bits := (defBits &^ 0xFFFFFFFFFFFF) | low48
		return math.Float64frombits(bits), nil
	default:
		return r.RD()
	}
}

// MCUnsigned reads a modular-char unsigned integer: 7-bit groups assembled
// little-group-first, with the high bit of each byte a continuation flag.
// Used for counts and sizes that are never negative (extended-data byte
// counts, class counts).
func (r *Reader) MCUnsigned() (uint64, error) {
	var v uint64
	shift := uint(0)
	for i := 0; i < 10; i++ { // 10 groups covers the full 64-bit range with room to spare
		b, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		v |= (b & 0x7F) << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
	return 0, errs.ErrCorruptStream
}

// MCSigned reads a modular-char signed integer as used by the handle-map's
// delta-encoded (handle, offset) pairs: identical group shape to
// MCUnsigned, except the terminating (non-continuation) byte reserves its
// second-highest bit (0x40) as a sign flag over the 6 remaining data bits.
func (r *Reader) MCSigned() (int64, error) {
	var v uint64
	shift := uint(0)
	for i := 0; i < 10; i++ {
		b, err := r.Bits(8)
		if err != nil {
			return 0, err
		}
		if b&0x80 != 0 {
			v |= (b & 0x7F) << shift
			shift += 7
			continue
		}
		// Terminal byte: bit 0x40 is sign, bits 0-5 are the final 6 data bits.
		v |= uint64(b&0x3F) << shift
		if b&0x40 != 0 {
			return -int64(v), nil
		}
		return int64(v), nil
	}
	return 0, errs.ErrCorruptStream
}

// MS reads a modular-short unsigned integer: 15-bit groups assembled
// little-group-first, with the high bit of each 16-bit little-endian group
// a continuation flag. Used for object and section byte sizes.
func (r *Reader) MS() (uint32, error) {
	var v uint32
	shift := uint(0)
	for i := 0; i < 3; i++ { // 3 groups of 15 bits covers > 32 bits
		raw, err := r.rawLE16()
		if err != nil {
			return 0, err
		}
		v |= uint32(raw&0x7FFF) << shift
		if raw&0x8000 == 0 {
			return v, nil
		}
		shift += 15
	}
	return 0, errs.ErrCorruptStream
}

// Color is the decoded form of a CMC (color) field: a palette index, plus
// an optional true color and name pair carried by AC1018+ files.
type Color struct {
	Index    uint16
	RGB      uint32
	Name     string
	BookName string
	HasTrue  bool
}

// CMC reads a color field: a BS palette index for every version, plus a BL
// true-color value and optional name strings for AC1018+.
func (r *Reader) CMC(ver format.Version) (Color, error) {
	idx, err := r.BS()
	if err != nil {
		return Color{}, err
	}
	c := Color{Index: idx}
	if !ver.HasSystemSections() {
		return c, nil
	}
	rgb, err := r.BL()
	if err != nil {
		return Color{}, err
	}
	c.RGB = rgb
	c.HasTrue = rgb&0x01000000 != 0 // top byte's low bit marks a true-color value, per the CMC flags byte
	name, err := r.T(ver)
	if err != nil {
		return Color{}, err
	}
	c.Name = name
	bookName, err := r.T(ver)
	if err != nil {
		return Color{}, err
	}
	c.BookName = bookName
	return c, nil
}

// Handle is a variable-length object identifier: a 4-bit reference-code
// nibble plus up to 8 big-endian value bytes.
type Handle struct {
	Code  uint8
	Value uint64
}

// IsZero reports whether h is the zero handle (code 0, value 0), the
// format's "unresolved" or "not present" sentinel.
func (h Handle) IsZero() bool { return h.Code == 0 && h.Value == 0 }

// Equal compares two handles by code and value.
func (h Handle) Equal(o Handle) bool { return h.Code == o.Code && h.Value == o.Value }

// H reads a handle: a 4-bit code, a 4-bit byte count, then that many
// big-endian value bytes (interpreted as an unsigned integer).
func (r *Reader) H() (Handle, error) {
	codeAndLen, err := r.Bits(8)
	if err != nil {
		return Handle{}, err
	}
	code := uint8(codeAndLen >> 4)
	n := int(codeAndLen & 0x0F)
	var v uint64
	for i := 0; i < n; i++ {
		b, err := r.Bits(8)
		if err != nil {
			return Handle{}, err
		}
		v = (v << 8) | b
	}
	return Handle{Code: code, Value: v}, nil
}

// T reads a text field: for AC1015/AC1018, a BS length followed by that
// many raw (code-page-dependent) bytes, decoded here as Latin-1 since the
// decoder does not track per-drawing code pages. For AC1021+ (TU), a BS
// length in UTF-16 code units followed by that many little-endian 16-bit
// units, converted to UTF-8.
func (r *Reader) T(ver format.Version) (string, error) {
	n, err := r.BS()
	if err != nil {
		return "", err
	}
	if ver.AtLeast(format.VersionAC1021) {
		units := make([]uint16, n)
		for i := range units {
			u, err := r.rawLE16()
			if err != nil {
				return "", err
			}
			units[i] = u
		}
		return string(utf16.Decode(units)), nil
	}

	buf := make([]rune, n)
	for i := range buf {
		b, err := r.Bits(8)
		if err != nil {
			return "", err
		}
		buf[i] = rune(b)
	}
	return string(buf), nil
}
