package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

func parseInsert(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Insert, error) {
	blockHandle, err := r.H()
	if err != nil {
		return nil, err
	}
	ix, iy, iz, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}

	var sx, sy, sz float64
	if ver.HasSystemSections() { // AC1018+: y/z scale stored as DD deltas off x scale
		if sx, err = r.BD(); err != nil {
			return nil, err
		}
		if sy, err = r.DD(sx); err != nil {
			return nil, err
		}
		if sz, err = r.DD(sx); err != nil {
			return nil, err
		}
	} else {
		if sx, err = r.BD(); err != nil {
			return nil, err
		}
		if sy, err = r.BD(); err != nil {
			return nil, err
		}
		if sz, err = r.BD(); err != nil {
			return nil, err
		}
	}

	rotation, err := r.BD()
	if err != nil {
		return nil, err
	}
	ex, ey, ez, err := r.BE()
	if err != nil {
		return nil, err
	}
	colCount, err := r.BS()
	if err != nil {
		return nil, err
	}
	rowCount, err := r.BS()
	if err != nil {
		return nil, err
	}
	colSpacing, err := r.BD()
	if err != nil {
		return nil, err
	}
	rowSpacing, err := r.BD()
	if err != nil {
		return nil, err
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &Insert{
		BlockHandle:    blockHandle.Value,
		InsertionPoint: Vec3{ix, iy, iz},
		Scale:          Vec3{sx, sy, sz},
		Rotation:       normalizeDegrees(rotation),
		RotationRad:    rotation,
		Extrusion:      Vec3{ex, ey, ez},
		ColumnCount:    colCount,
		RowCount:       rowCount,
		ColumnSpacing:  colSpacing,
		RowSpacing:     rowSpacing,
	}, nil
}
