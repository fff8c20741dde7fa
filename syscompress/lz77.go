package syscompress

import "github.com/cadkit/dwgread/errs"

// Decompress expands src into dst using the DWG system-section LZ77
// variant. dst must already be sized to the page's known decompressed
// length; a back-reference or literal run that would write past the end of
// dst, or an opcode that runs off the end of src, fails with
// errs.ErrCorruptStream.
//
// Opcode layout:
//
//	0x00       long literal: next byte N, run length = N + 0x0F + 3
//	0x01..0x0F short literal: run length = opcode
//	0x10..0x1F short back-reference: next byte B; offset = ((opcode&0x0F)<<4 | B>>4) + 1, length = (B&0x0F) + 3
//	0x20       long back-reference: next byte L (length = L + 3), then two bytes B0,B1; offset = (B1<<8 | B0) + 1
//	0x21..0x3F medium back-reference: length = opcode - 0x1E, then two bytes B0,B1; offset = (B1<<8 | B0) + 1
//	0x40..0xFF two-byte back-reference: next byte B; length = (opcode>>4) - 2, offset = ((opcode&0x0F)<<8 | B) + 1
func Decompress(dst, src []byte) error {
	si, di := 0, 0

	readLiteral := func(n int) error {
		if si+n > len(src) || di+n > len(dst) {
			return errs.ErrCorruptStream
		}
		copy(dst[di:di+n], src[si:si+n])
		si += n
		di += n
		return nil
	}

	copyBack := func(offset, length int) error {
		if offset <= 0 || offset > di || di+length > len(dst) {
			return errs.ErrCorruptStream
		}
		for k := 0; k < length; k++ {
			dst[di+k] = dst[di-offset+k]
		}
		di += length
		return nil
	}

	for si < len(src) {
		op := src[si]
		si++
		switch {
		case op == 0x00:
			if si >= len(src) {
				return errs.ErrCorruptStream
			}
			n := int(src[si]) + 0x0F + 3
			si++
			if err := readLiteral(n); err != nil {
				return err
			}
		case op >= 0x01 && op <= 0x0F:
			if err := readLiteral(int(op)); err != nil {
				return err
			}
		case op >= 0x10 && op <= 0x1F:
			if si >= len(src) {
				return errs.ErrCorruptStream
			}
			b := src[si]
			si++
			offset := (int(op&0x0F)<<4 | int(b>>4)) + 1
			length := int(b&0x0F) + 3
			if err := copyBack(offset, length); err != nil {
				return err
			}
		case op == 0x20:
			if si+2 >= len(src) {
				return errs.ErrCorruptStream
			}
			length := int(src[si]) + 3
			b0, b1 := src[si+1], src[si+2]
			si += 3
			offset := (int(b1)<<8 | int(b0)) + 1
			if err := copyBack(offset, length); err != nil {
				return err
			}
		case op >= 0x21 && op <= 0x3F:
			if si+1 >= len(src) {
				return errs.ErrCorruptStream
			}
			length := int(op) - 0x1E
			b0, b1 := src[si], src[si+1]
			si += 2
			offset := (int(b1)<<8 | int(b0)) + 1
			if err := copyBack(offset, length); err != nil {
				return err
			}
		default: // 0x40..0xFF
			if si >= len(src) {
				return errs.ErrCorruptStream
			}
			b := src[si]
			si++
			length := int(op>>4) - 2
			offset := (int(op&0x0F)<<8 | int(b)) + 1
			if err := copyBack(offset, length); err != nil {
				return err
			}
		}
		if di == len(dst) {
			return nil
		}
	}
	if di != len(dst) {
		return errs.ErrCorruptStream
	}
	return nil
}
