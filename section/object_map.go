package section

import (
	"encoding/binary"

	"github.com/cadkit/dwgread/bitio"
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/errs"
)

// ObjectMapEntry is one decoded (handle, offset) pair from the handle
// section: offset is absolute into the logical AcDbObjects stream.
type ObjectMapEntry struct {
	Handle uint64
	Offset uint64
}

// ObjectMap is the decoded handle-to-offset index built by ParseObjectMap.
// Entries preserve the order they were encountered in the handle stream.
type ObjectMap struct {
	entries []ObjectMapEntry
	index   map[uint64]uint64
}

// Lookup returns the absolute AcDbObjects offset for handle, if present.
func (m *ObjectMap) Lookup(handle uint64) (uint64, bool) {
	off, ok := m.index[handle]
	return off, ok
}

// Entries returns the decoded (handle, offset) pairs in encounter order.
func (m *ObjectMap) Entries() []ObjectMapEntry { return m.entries }

// Len returns the number of decoded entries.
func (m *ObjectMap) Len() int { return len(m.entries) }

// ParseObjectMap decodes the reassembled handle-section stream: a sequence
// of fixed-size subsections, each introduced by a big-endian 16-bit size and
// terminated by a subsection whose size is exactly 2 (an empty body holding
// only the trailing CRC). Within a subsection, pairs are delta-encoded
// relative to the running (handle, offset) and the final two bytes are a
// CRC-16 over the preceding body bytes.
func ParseObjectMap(buf []byte) (*ObjectMap, error) {
	r := bitio.New(buf)
	m := &ObjectMap{index: make(map[uint64]uint64)}

	var runningHandle, runningOffset uint64
	for {
		size, err := r.BEU16()
		if err != nil {
			return nil, err
		}
		if size == 2 {
			break
		}
		if size < 2 {
			return nil, errs.ErrCorruptHandles
		}
		body, err := r.Bytes(int(size))
		if err != nil {
			return nil, err
		}
		payload := body[:len(body)-2]
		storedCRC := binary.BigEndian.Uint16(body[len(body)-2:])
		if computed := bitio.CRC16(0, payload); computed != storedCRC {
			return nil, errs.ErrCorruptHandles
		}

		pr := bitstream.New(payload)
		for pr.Len() >= 8 {
			dh, err := pr.MCSigned()
			if err != nil {
				return nil, err
			}
			doff, err := pr.MCSigned()
			if err != nil {
				return nil, err
			}
			runningHandle = uint64(int64(runningHandle) + dh)
			runningOffset = uint64(int64(runningOffset) + doff)
			entry := ObjectMapEntry{Handle: runningHandle, Offset: runningOffset}
			m.entries = append(m.entries, entry)
			m.index[runningHandle] = runningOffset
		}
	}
	return m, nil
}
