package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parseCircle(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Circle, error) {
	cx, cy, cz, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	radius, err := r.BD()
	if err != nil {
		return nil, err
	}
	thickness, err := r.BT()
	if err != nil {
		return nil, err
	}
	ex, ey, ez, err := r.BE()
	if err != nil {
		return nil, err
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &Circle{
		Center:    Vec3{cx, cy, cz},
		Radius:    radius,
		Thickness: thickness,
		Extrusion: Vec3{ex, ey, ez},
	}, nil
}
