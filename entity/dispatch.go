package entity

import (
	"math"

	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

// Fixed object type codes (<500) this decoder recognizes. The format's
// published class table assigns real DWG files different numbers for the
// same entities; this decoder uses its own closed numbering and does not
// consult AcDb:Classes. Any code not fixed here surfaces as UNSUPPORTED.
const (
	TypeLine       uint16 = 1
	TypeArc        uint16 = 2
	TypeLWPolyline uint16 = 3
	TypePoint      uint16 = 4
	TypeCircle     uint16 = 5
	TypeEllipse    uint16 = 6
	TypeText       uint16 = 7
	TypeMText      uint16 = 8
	TypeDimension  uint16 = 9
	TypeInsert     uint16 = 10
)

var typeNames = map[uint16]string{
	TypeLine:       "LINE",
	TypeArc:        "ARC",
	TypeLWPolyline: "LWPOLYLINE",
	TypePoint:      "POINT",
	TypeCircle:     "CIRCLE",
	TypeEllipse:    "ELLIPSE",
	TypeText:       "TEXT",
	TypeMText:      "MTEXT",
	TypeDimension:  "DIMENSION",
	TypeInsert:     "INSERT",
}

// Decode dispatches on typeCode and parses one object's body from r, which
// must be positioned at the start of the common entity header (C7) and
// scoped to exactly the object's byte span.
func Decode(typeCode uint16, r *bitstream.Reader, ver format.Version) (Record, error) {
	name, known := typeNames[typeCode]
	if !known {
		return Record{Type: "UNSUPPORTED", RawType: typeCode}, nil
	}

	common, err := ParseCommonHeader(r, ver)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Type: name, RawType: typeCode, Common: common}
	switch typeCode {
	case TypeLine:
		rec.Data, err = parseLine(r, ver, &rec.Common)
	case TypeArc:
		rec.Data, err = parseArc(r, ver, &rec.Common)
	case TypeLWPolyline:
		rec.Data, err = parseLWPolyline(r, ver, &rec.Common)
	case TypePoint:
		rec.Data, err = parsePoint(r, ver, &rec.Common)
	case TypeCircle:
		rec.Data, err = parseCircle(r, ver, &rec.Common)
	case TypeEllipse:
		rec.Data, err = parseEllipse(r, ver, &rec.Common)
	case TypeText:
		rec.Data, err = parseText(r, ver, &rec.Common)
	case TypeMText:
		rec.Data, err = parseMText(r, ver, &rec.Common)
	case TypeDimension:
		rec.Data, err = parseDimension(r, ver, &rec.Common)
	case TypeInsert:
		rec.Data, err = parseInsert(r, ver, &rec.Common)
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// normalizeDegrees converts radians to degrees in [0, 360).
func normalizeDegrees(radians float64) float64 {
	deg := radians * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
