package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parseText(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Text, error) {
	elevation, err := r.BD()
	if err != nil {
		return nil, err
	}
	ix, err := r.RD()
	if err != nil {
		return nil, err
	}
	iy, err := r.RD()
	if err != nil {
		return nil, err
	}
	ax, err := r.DD(ix)
	if err != nil {
		return nil, err
	}
	ay, err := r.DD(iy)
	if err != nil {
		return nil, err
	}
	ex, ey, ez, err := r.BE()
	if err != nil {
		return nil, err
	}
	thickness, err := r.BT()
	if err != nil {
		return nil, err
	}
	oblique, err := r.BD()
	if err != nil {
		return nil, err
	}
	rotation, err := r.BD()
	if err != nil {
		return nil, err
	}
	height, err := r.BD()
	if err != nil {
		return nil, err
	}
	widthFactor, err := r.BD()
	if err != nil {
		return nil, err
	}
	value, err := r.T(ver)
	if err != nil {
		return nil, err
	}
	genFlags, err := r.BS()
	if err != nil {
		return nil, err
	}
	hAlign, err := r.BS()
	if err != nil {
		return nil, err
	}
	vAlign, err := r.BS()
	if err != nil {
		return nil, err
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &Text{
		InsertionPoint:      [2]float64{ix, iy},
		AlignmentPoint:      [2]float64{ax, ay},
		Elevation:           elevation,
		Extrusion:           Vec3{ex, ey, ez},
		Thickness:           thickness,
		ObliqueAngle:        oblique,
		RotationAngle:       rotation,
		Height:              height,
		WidthFactor:         widthFactor,
		Value:               value,
		GenerationFlags:     genFlags,
		HorizontalAlignment: hAlign,
		VerticalAlignment:   vAlign,
	}, nil
}
