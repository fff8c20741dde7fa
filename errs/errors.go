// Package errs defines the sentinel error values returned by the dwgread
// decoder, plus a DecodeError wrapper that pins the failure to a byte/bit
// offset and, where relevant, the object handle being decoded.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind in the decoder's error taxonomy.
// Callers compare against these with errors.Is; DecodeError wraps them so
// the underlying sentinel survives %w-unwrapping.
var (
	// ErrUnsupportedVersion is returned when the first six bytes of a file
	// don't match one of AC1015, AC1018, AC1021, AC1024, AC1027.
	ErrUnsupportedVersion = errors.New("dwg: unsupported version")

	// ErrTruncated is returned when a byte-level read runs past the end of
	// the available buffer.
	ErrTruncated = errors.New("dwg: truncated data")

	// ErrBitUnderflow is returned when a bitstream read runs past the end
	// of the available bits.
	ErrBitUnderflow = errors.New("dwg: bitstream underflow")

	// ErrCorruptSection is returned when a system-section page's CRC-16
	// doesn't match its stored checksum.
	ErrCorruptSection = errors.New("dwg: corrupt section")

	// ErrCorruptHandles is returned when a handle-map subsection's
	// trailing CRC-16 doesn't match, or its size field is below 2.
	ErrCorruptHandles = errors.New("dwg: corrupt handle map")

	// ErrCorruptStream is returned by the system-section decompressor when
	// an opcode would write past the preallocated output buffer, or when
	// an input runs out mid-opcode.
	ErrCorruptStream = errors.New("dwg: corrupt compressed stream")

	// ErrParserOverrun is returned when an entity parser consumes more
	// bits than its object's declared size allows.
	ErrParserOverrun = errors.New("dwg: entity parser overrun")

	// ErrConvertFailed is returned when the AC1027 downgrade shim exits
	// non-zero, or exits zero but leaves no matching AC1018 file behind.
	ErrConvertFailed = errors.New("dwg: downgrade conversion failed")
)

// DecodeError annotates a sentinel error with the position in the input
// (byte or bit offset, whichever the failing reader uses) and, when known,
// the handle of the object being decoded.
type DecodeError struct {
	Err    error
	Offset int64
	Handle string // empty when no object was in scope
}

func (e *DecodeError) Error() string {
	if e.Handle != "" {
		return fmt.Sprintf("%s: offset %d, handle %s", e.Err, e.Offset, e.Handle)
	}
	return fmt.Sprintf("%s: offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Wrap builds a DecodeError from a sentinel, an offset, and an optional
// handle string (pass "" when no object is in scope).
func Wrap(err error, offset int64, handle string) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Err: err, Offset: offset, Handle: handle}
}
