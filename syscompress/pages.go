package syscompress

import (
	"github.com/cadkit/dwgread/bitio"
	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/section"
)

// ReadPage reads and, if necessary, decompresses the page whose PageHeader
// begins at the absolute byte offset pageOffset within file. It validates
// the page's checksum over the decompressed bytes, returning
// errs.ErrCorruptSection on mismatch.
func ReadPage(file []byte, pageOffset uint32) (section.PageHeader, []byte, error) {
	r := bitio.New(file)
	r.Seek(int(pageOffset))
	hdrBytes, err := r.Bytes(section.PageHeaderSize)
	if err != nil {
		return section.PageHeader{}, nil, err
	}
	var hdr section.PageHeader
	if err := hdr.Parse(hdrBytes); err != nil {
		return section.PageHeader{}, nil, err
	}

	compressed, err := r.Bytes(int(hdr.CompressedSize))
	if err != nil {
		return section.PageHeader{}, nil, err
	}

	var decompressed []byte
	if hdr.CompressedSize == hdr.DecompressedSize {
		decompressed = append([]byte(nil), compressed...)
	} else {
		decompressed = make([]byte, hdr.DecompressedSize)
		if err := Decompress(decompressed, compressed); err != nil {
			return section.PageHeader{}, nil, err
		}
	}

	if checksum := bitio.CRC16(0, decompressed); uint32(checksum) != hdr.Checksum {
		return section.PageHeader{}, nil, errs.ErrCorruptSection
	}
	return hdr, decompressed, nil
}

// DecodePageMap reads and decompresses the page map page, then parses its
// (page_number, offset, size) entries.
func DecodePageMap(file []byte, params section.PageParams) ([]section.PageMapEntry, error) {
	_, decompressed, err := ReadPage(file, params.PageMapSeeker)
	if err != nil {
		return nil, err
	}
	return section.ParsePageMap(decompressed)
}

// DecodeSectionMap reads and decompresses the section map page, then parses
// its name-keyed table of page sequences.
func DecodeSectionMap(file []byte, params section.PageParams) (map[string]section.SectionMapEntry, error) {
	_, decompressed, err := ReadPage(file, params.SectionMapSeeker)
	if err != nil {
		return nil, err
	}
	return section.ParseSectionMap(decompressed)
}

// BuildPageIndex keys a decoded page map's entries by page number, for fast
// lookup while assembling a logical section.
func BuildPageIndex(entries []section.PageMapEntry) map[uint32]section.PageMapEntry {
	idx := make(map[uint32]section.PageMapEntry, len(entries))
	for _, e := range entries {
		idx[e.PageNumber] = e
	}
	return idx
}

// AssembleSection concatenates the decompressed pages of a named logical
// section, in the order given by the section map, into one contiguous
// buffer. Every constituent page's checksum is validated as it is read.
func AssembleSection(file []byte, entry section.SectionMapEntry, pageIndex map[uint32]section.PageMapEntry) ([]byte, error) {
	out := make([]byte, 0, entry.TotalSize)
	for _, pageNum := range entry.Pages {
		pm, ok := pageIndex[pageNum]
		if !ok {
			return nil, errs.ErrCorruptSection
		}
		_, decompressed, err := ReadPage(file, pm.Offset)
		if err != nil {
			return nil, err
		}
		out = append(out, decompressed...)
	}
	return out, nil
}
