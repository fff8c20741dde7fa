package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parseMText(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*MText, error) {
	ix, iy, iz, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	ex, ey, ez, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	xx, xy, xz, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	rectWidth, err := r.BD()
	if err != nil {
		return nil, err
	}
	textHeight, err := r.BD()
	if err != nil {
		return nil, err
	}
	attachment, err := r.BS()
	if err != nil {
		return nil, err
	}
	drawingDir, err := r.BS()
	if err != nil {
		return nil, err
	}
	extentsHeight, err := r.BD()
	if err != nil {
		return nil, err
	}
	extentsWidth, err := r.BD()
	if err != nil {
		return nil, err
	}
	value, err := r.T(ver)
	if err != nil {
		return nil, err
	}
	lineSpaceStyle, err := r.BS()
	if err != nil {
		return nil, err
	}
	lineSpaceFactor, err := r.BD()
	if err != nil {
		return nil, err
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &MText{
		InsertionPoint:  Vec3{ix, iy, iz},
		Extrusion:       Vec3{ex, ey, ez},
		XAxisDir:        Vec3{xx, xy, xz},
		RectWidth:       rectWidth,
		TextHeight:      textHeight,
		Attachment:      attachment,
		DrawingDir:      drawingDir,
		ExtentsHeight:   extentsHeight,
		ExtentsWidth:    extentsWidth,
		Value:           value,
		LineSpaceStyle:  lineSpaceStyle,
		LineSpaceFactor: lineSpaceFactor,
	}, nil
}
