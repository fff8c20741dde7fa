package section

import (
	"encoding/binary"

	"github.com/cadkit/dwgread/bitio"
	"github.com/cadkit/dwgread/errs"
)

// PageHeader is the fixed-size framing record that precedes every page's
// payload in an AC1018+ file.
type PageHeader struct {
	SectionType      uint32
	DecompressedSize uint32
	CompressedSize   uint32
	Checksum         uint32
	SectionPageNumber uint32
}

// Parse decodes a PageHeader from exactly PageHeaderSize bytes.
func (h *PageHeader) Parse(buf []byte) error {
	if len(buf) != PageHeaderSize {
		return errs.ErrTruncated
	}
	h.SectionType = binary.LittleEndian.Uint32(buf[0:4])
	h.DecompressedSize = binary.LittleEndian.Uint32(buf[4:8])
	h.CompressedSize = binary.LittleEndian.Uint32(buf[8:12])
	h.Checksum = binary.LittleEndian.Uint32(buf[12:16])
	h.SectionPageNumber = binary.LittleEndian.Uint32(buf[16:20])
	return nil
}

// Bytes serializes h back into PageHeaderSize bytes.
func (h *PageHeader) Bytes() []byte {
	b := make([]byte, PageHeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], h.SectionType)
	binary.LittleEndian.PutUint32(b[4:8], h.DecompressedSize)
	binary.LittleEndian.PutUint32(b[8:12], h.CompressedSize)
	binary.LittleEndian.PutUint32(b[12:16], h.Checksum)
	binary.LittleEndian.PutUint32(b[16:20], h.SectionPageNumber)
	return b
}

// PageMapEntry associates a page number with its absolute file offset and
// on-disk size, as listed in the decoded page map. The offset points at the
// page's PageHeader, not its compressed payload.
type PageMapEntry struct {
	PageNumber uint32
	Offset     uint32
	Size       uint32
}

// ParsePageMap decodes an already-decompressed page map buffer into its
// entries: a count, then that many (page_number, offset, size) triples.
func ParsePageMap(buf []byte) ([]PageMapEntry, error) {
	r := bitio.New(buf)
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	entries := make([]PageMapEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		pageNum, err := r.U32()
		if err != nil {
			return nil, err
		}
		offset, err := r.U32()
		if err != nil {
			return nil, err
		}
		size, err := r.U32()
		if err != nil {
			return nil, err
		}
		entries = append(entries, PageMapEntry{PageNumber: pageNum, Offset: offset, Size: size})
	}
	return entries, nil
}

// SectionMapEntry describes one logical section: the run of page numbers
// that make it up, in order, and the total size of the reassembled
// decompressed stream.
type SectionMapEntry struct {
	Name      string
	Pages     []uint32
	TotalSize uint32
}

// ParseSectionMap decodes an already-decompressed section map buffer into a
// name-keyed table of SectionMapEntry.
func ParseSectionMap(buf []byte) (map[string]SectionMapEntry, error) {
	r := bitio.New(buf)
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	out := make(map[string]SectionMapEntry, count)
	for i := uint32(0); i < count; i++ {
		totalSize, err := r.U32()
		if err != nil {
			return nil, err
		}
		pageCount, err := r.U32()
		if err != nil {
			return nil, err
		}
		pages := make([]uint32, pageCount)
		for j := range pages {
			pages[j], err = r.U32()
			if err != nil {
				return nil, err
			}
		}
		nameLen, err := r.U32()
		if err != nil {
			return nil, err
		}
		nameBytes, err := r.Bytes(int(nameLen))
		if err != nil {
			return nil, err
		}
		name := string(nameBytes)
		out[name] = SectionMapEntry{Name: name, Pages: pages, TotalSize: totalSize}
	}
	return out, nil
}
