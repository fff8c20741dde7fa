package section

import (
	"github.com/cadkit/dwgread/bitio"
	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/format"
)

// Locator is one entry of the AC1015 flat section locator table: a record
// number, a byte seeker into the file, and the section's size in bytes.
type Locator struct {
	RecordNumber uint32
	Seeker       uint32
	Size         uint32
}

// PageParams holds everything C4 needs to find the page map and section map
// in an AC1018+ file.
type PageParams struct {
	StandardPageSize uint32
	PageMapSeeker    uint32
	PageMapSize      uint32
	SectionMapSeeker uint32
	SectionMapSize   uint32
	MaxSectionSize   uint32
}

// HeaderInfo is the result of parsing a DWG file header: the version code,
// and either a locator table (AC1015) or page parameters (AC1018+).
type HeaderInfo struct {
	Version  format.Version
	Locators [AC1015LocatorCount]Locator
	Page     PageParams
}

// ParseHeader reads the version magic at the start of buf and dispatches to
// the AC1015 or AC1018+ header parser.
func ParseHeader(buf []byte) (HeaderInfo, error) {
	if len(buf) < 6 {
		return HeaderInfo{}, errs.ErrTruncated
	}
	ver := format.ParseVersion(buf[:6])
	if !ver.Supported() {
		return HeaderInfo{}, errs.ErrUnsupportedVersion
	}
	if ver == format.VersionAC1015 {
		return parseAC1015Header(buf, ver)
	}
	return parseAC1018Header(buf, ver)
}

func parseAC1015Header(buf []byte, ver format.Version) (HeaderInfo, error) {
	r := bitio.New(buf)
	r.Seek(AC1015LocatorOffset)

	info := HeaderInfo{Version: ver}
	for i := 0; i < AC1015LocatorCount; i++ {
		recNum, err := r.U32()
		if err != nil {
			return HeaderInfo{}, err
		}
		seeker, err := r.U32()
		if err != nil {
			return HeaderInfo{}, err
		}
		size, err := r.U32()
		if err != nil {
			return HeaderInfo{}, err
		}
		info.Locators[i] = Locator{RecordNumber: recNum, Seeker: seeker, Size: size}
	}

	sentinel, err := r.Bytes(len(AC1015Sentinel))
	if err != nil {
		return HeaderInfo{}, err
	}
	for i, b := range sentinel {
		if b != AC1015Sentinel[i] {
			return HeaderInfo{}, errs.ErrCorruptSection
		}
	}
	return info, nil
}

func parseAC1018Header(buf []byte, ver format.Version) (HeaderInfo, error) {
	r := bitio.New(buf)
	r.Seek(6)
	preamble, err := r.Bytes(AC1018PreambleSize)
	if err != nil {
		return HeaderInfo{}, err
	}
	decrypted := xorPreamble(preamble)

	pr := bitio.New(decrypted)
	field := func(offset int) (uint32, error) {
		pr.Seek(offset)
		return pr.U32()
	}

	pageSize, err := field(PreambleStandardPageSize)
	if err != nil {
		return HeaderInfo{}, err
	}
	pageMapSeeker, err := field(PreamblePageMapSeeker)
	if err != nil {
		return HeaderInfo{}, err
	}
	pageMapSize, err := field(PreamblePageMapSize)
	if err != nil {
		return HeaderInfo{}, err
	}
	sectionMapSeeker, err := field(PreambleSectionMapSeeker)
	if err != nil {
		return HeaderInfo{}, err
	}
	sectionMapSize, err := field(PreambleSectionMapSize)
	if err != nil {
		return HeaderInfo{}, err
	}
	maxSectionSize, err := field(PreambleMaxSectionSize)
	if err != nil {
		return HeaderInfo{}, err
	}

	return HeaderInfo{
		Version: ver,
		Page: PageParams{
			StandardPageSize: pageSize,
			PageMapSeeker:    pageMapSeeker,
			PageMapSize:      pageMapSize,
			SectionMapSeeker: sectionMapSeeker,
			SectionMapSize:   sectionMapSize,
			MaxSectionSize:   maxSectionSize,
		},
	}, nil
}

// xorPreamble reverses the fixed repeating-key XOR mask AC1018+ applies to
// the system header.
func xorPreamble(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[i] = b ^ preambleXORKey[i%len(preambleXORKey)]
	}
	return out
}
