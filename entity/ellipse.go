package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parseEllipse(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Ellipse, error) {
	cx, cy, cz, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	mx, my, mz, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	ex, ey, ez, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	ratio, err := r.BD()
	if err != nil {
		return nil, err
	}
	startAngle, err := r.BD()
	if err != nil {
		return nil, err
	}
	endAngle, err := r.BD()
	if err != nil {
		return nil, err
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &Ellipse{
		Center:            Vec3{cx, cy, cz},
		MajorAxisEndpoint: Vec3{mx, my, mz},
		Extrusion:         Vec3{ex, ey, ez},
		AxisRatio:         ratio,
		StartAngle:        normalizeDegrees(startAngle),
		EndAngle:          normalizeDegrees(endAngle),
	}, nil
}
