package objects

import (
	"errors"
	"fmt"

	"github.com/cadkit/dwgread/bitio"
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/entity"
	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/format"
	"github.com/cadkit/dwgread/section"
)

// Options bounds and tunes C6's behavior; the zero value applies no size
// cap and tolerates a CRC mismatch.
type Options struct {
	MaxObjectSize uint32 // 0 means unbounded
	StrictCRC     bool   // false tolerates a CRC mismatch instead of failing
}

// Decode reads one object at entry.Offset within acDbObjects, validates its
// trailing CRC-16, and returns the dispatched entity.Record.
func Decode(acDbObjects []byte, entry section.ObjectMapEntry, ver format.Version, opts Options) (entity.Record, error) {
	if entry.Offset >= uint64(len(acDbObjects)) {
		return entity.Record{}, errs.Wrap(errs.ErrTruncated, int64(entry.Offset), fmt.Sprintf("0x%X", entry.Handle))
	}

	sizeR := bitstream.New(acDbObjects[entry.Offset:])
	size, err := sizeR.MS()
	if err != nil {
		return entity.Record{}, errs.Wrap(err, int64(entry.Offset), fmt.Sprintf("0x%X", entry.Handle))
	}
	if opts.MaxObjectSize != 0 && size > opts.MaxObjectSize {
		return entity.Record{}, errs.Wrap(errs.ErrTruncated, int64(entry.Offset), fmt.Sprintf("0x%X", entry.Handle))
	}

	bodyStart := entry.Offset + uint64(sizeR.BytePos())
	bodyEnd := bodyStart + uint64(size)
	if size < 2 || bodyEnd > uint64(len(acDbObjects)) {
		return entity.Record{}, errs.Wrap(errs.ErrTruncated, int64(bodyStart), fmt.Sprintf("0x%X", entry.Handle))
	}
	body := acDbObjects[bodyStart:bodyEnd]

	crcStored := uint16(body[len(body)-2]) | uint16(body[len(body)-1])<<8
	crcGot := bitio.CRC16(0, body[:len(body)-2])
	if crcGot != crcStored && opts.StrictCRC {
		return entity.Record{}, errs.Wrap(errs.ErrCorruptHandles, int64(bodyStart), fmt.Sprintf("0x%X", entry.Handle))
	}

	r := bitstream.New(body[:len(body)-2])
	typeCode, err := r.BS()
	if err != nil {
		return entity.Record{}, errs.Wrap(err, int64(bodyStart), fmt.Sprintf("0x%X", entry.Handle))
	}

	rec, err := entity.Decode(typeCode, r, ver)
	if err != nil {
		// A read past the scoped body means the parser overran the
		// object's declared size; every other failure is reported as-is.
		if errors.Is(err, errs.ErrBitUnderflow) {
			return entity.Record{}, errs.Wrap(errs.ErrParserOverrun, int64(bodyStart), fmt.Sprintf("0x%X", entry.Handle))
		}
		return entity.Record{}, errs.Wrap(err, int64(bodyStart), fmt.Sprintf("0x%X", entry.Handle))
	}

	return rec, nil
}

// DecodeAll resolves every entry in m against acDbObjects, in object-map
// order, which matches on-disk order.
func DecodeAll(acDbObjects []byte, m *section.ObjectMap, ver format.Version, opts Options) ([]entity.Record, error) {
	entries := m.Entries()
	out := make([]entity.Record, 0, len(entries))
	for _, e := range entries {
		rec, err := Decode(acDbObjects, e, ver, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
