package dwg

import (
	"os"

	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/format"
	"github.com/cadkit/dwgread/objects"
	"github.com/cadkit/dwgread/section"
	"github.com/cadkit/dwgread/syscompress"
)

// Read decodes the DWG file at path into a Document. An AC1027 input is
// first downgraded to AC1018 via the external converter shim (see
// convert.go) before the core decoder runs, since the core does not parse
// AC1027's section layout directly.
func Read(path string, opts ...ReadOption) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) < 6 {
		return nil, errs.ErrUnsupportedVersion
	}

	ver := format.ParseVersion(buf[:6])
	if ver == format.VersionAC1027 {
		converted, err := downgrade(path, cfg.converterPath)
		if err != nil {
			return nil, err
		}
		buf = converted
		ver = format.ParseVersion(buf[:6])
	}
	if !ver.Supported() {
		return nil, errs.ErrUnsupportedVersion
	}

	header, err := section.ParseHeader(buf)
	if err != nil {
		return nil, err
	}

	var acDbObjects, handleBytes []byte
	if ver == format.VersionAC1015 {
		loc := header.Locators[section.LocatorObjectMap]
		if int(loc.Seeker+loc.Size) > len(buf) {
			return nil, errs.ErrTruncated
		}
		handleBytes = buf[loc.Seeker : loc.Seeker+loc.Size]
		acDbObjects = buf // AC1015 objects sit at absolute file offsets, no paging
	} else {
		pageEntries, err := syscompress.DecodePageMap(buf, header.Page)
		if err != nil {
			return nil, err
		}
		sectionMap, err := syscompress.DecodeSectionMap(buf, header.Page)
		if err != nil {
			return nil, err
		}
		pageIndex := syscompress.BuildPageIndex(pageEntries)

		handlesEntry, ok := sectionMap[section.SectionHandles]
		if !ok {
			return nil, errs.ErrCorruptSection
		}
		handleBytes, err = syscompress.AssembleSection(buf, handlesEntry, pageIndex)
		if err != nil {
			return nil, err
		}

		objectsEntry, ok := sectionMap[section.SectionObjects]
		if !ok {
			return nil, errs.ErrCorruptSection
		}
		acDbObjects, err = syscompress.AssembleSection(buf, objectsEntry, pageIndex)
		if err != nil {
			return nil, err
		}
	}

	objMap, err := section.ParseObjectMap(handleBytes)
	if err != nil {
		return nil, err
	}

	decodeOpts := objects.Options{MaxObjectSize: cfg.maxObjectSize, StrictCRC: cfg.strictCRC}
	records, err := objects.DecodeAll(acDbObjects, objMap, ver, decodeOpts)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version:           ver,
		layouts:           map[string]*Layout{modelLayoutName: {Name: modelLayoutName}},
		entitiesByHandle:  make(map[uint64]Entity, len(records)),
		acDbObjectsDigest: acDbObjects,
	}
	model := doc.layouts[modelLayoutName]
	for _, rec := range records {
		e := Entity{rec: rec}
		model.entities = append(model.entities, e)
		doc.entitiesByHandle[e.Handle()] = e
	}

	return doc, nil
}
