package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parseLine(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Line, error) {
	zIsZero, err := r.B()
	if err != nil {
		return nil, err
	}
	p0x, err := r.BD()
	if err != nil {
		return nil, err
	}
	p1x, err := r.BD()
	if err != nil {
		return nil, err
	}
	p0y, err := r.BD()
	if err != nil {
		return nil, err
	}
	p1y, err := r.BD()
	if err != nil {
		return nil, err
	}

	var p0z, p1z float64
	if !zIsZero {
		if p0z, err = r.BD(); err != nil {
			return nil, err
		}
		if p1z, err = r.BD(); err != nil {
			return nil, err
		}
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

	return &Line{
		Start:     Vec3{p0x, p0y, p0z},
		End:       Vec3{p1x, p1y, p1z},
		Thickness: thickness,
		Extrusion: Vec3{ex, ey, ez},
	}, nil
}
