package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parsePoint(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Point, error) {
	x, y, z, err := r.ThreeBD()
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
	angle, err := r.BD()
	if err != nil {
		return nil, err
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &Point{
		Position:  Vec3{x, y, z},
		Thickness: thickness,
		Extrusion: Vec3{ex, ey, ez},
		Angle:     angle,
	}, nil
}
