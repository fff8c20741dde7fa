package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

const (
	lwFlagExtrusion  = 0x01
	lwFlagThickness  = 0x02
	lwFlagConstWidth = 0x04
	lwFlagElevation  = 0x08
	lwFlagHasBulges  = 0x10
	lwFlagHasWidths  = 0x20
)

func parseLWPolyline(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*LWPolyline, error) {
	flags, err := r.BS()
	if err != nil {
		return nil, err
	}

	var poly LWPolyline
	if flags&lwFlagConstWidth != 0 {
		if poly.ConstWidth, err = r.BD(); err != nil {
			return nil, err
		}
	}
	if flags&lwFlagElevation != 0 {
		if poly.Elevation, err = r.BD(); err != nil {
			return nil, err
		}
	}
	if flags&lwFlagThickness != 0 {
		if poly.Thickness, err = r.BD(); err != nil {
			return nil, err
		}
	}
	if flags&lwFlagExtrusion != 0 {
		ex, ey, ez, err := r.BE()
		if err != nil {
			return nil, err
		}
		poly.Extrusion = Vec3{ex, ey, ez}
	} else {
		poly.Extrusion = Vec3{0, 0, 1}
	}

	numPoints, err := r.BL()
	if err != nil {
		return nil, err
	}

	var numBulges, numWidths uint32
	if flags&lwFlagHasBulges != 0 {
		if numBulges, err = r.BL(); err != nil {
			return nil, err
		}
	}
	if flags&lwFlagHasWidths != 0 {
		if numWidths, err = r.BL(); err != nil {
			return nil, err
		}
	}

	poly.Points = make([][2]float64, numPoints)
	var prevX, prevY float64
	for i := uint32(0); i < numPoints; i++ {
		var x, y float64
		if i == 0 {
			if x, err = r.RD(); err != nil {
				return nil, err
			}
			if y, err = r.RD(); err != nil {
				return nil, err
			}
		} else {
			if x, err = r.DD(prevX); err != nil {
				return nil, err
			}
			if y, err = r.DD(prevY); err != nil {
				return nil, err
			}
		}
		poly.Points[i] = [2]float64{x, y}
		prevX, prevY = x, y
	}

	poly.Bulges = make([]float64, numBulges)
	for i := range poly.Bulges {
		if poly.Bulges[i], err = r.BD(); err != nil {
			return nil, err
		}
	}

	poly.Widths = make([]LWPolylineWidth, numWidths)
	for i := range poly.Widths {
		start, err := r.BD()
		if err != nil {
			return nil, err
		}
		end, err := r.BD()
		if err != nil {
			return nil, err
		}
		poly.Widths[i] = LWPolylineWidth{Start: start, End: end}
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &poly, nil
}
