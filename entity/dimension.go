package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/errs"
	"github.com/cadkit/dwgread/format"
)

// Dimension subclass flag values (the low 3 bits of the subtype byte; the
// format reserves the top bits for "ordinate" and "user text position"
// flags this decoder does not surface).
const (
	dimSubtypeLinear   = 0
	dimSubtypeRadius   = 1
	dimSubtypeDiameter = 2
)

func parseDimension(r *bitstream.Reader, ver format.Version, common *CommonHeader) (*Dimension, error) {
	blockHandle, err := r.H()
	if err != nil {
		return nil, err
	}
	dimStyleHandle, err := r.H()
	if err != nil {
		return nil, err
	}

	ex, ey, ez, err := r.ThreeBD()
	if err != nil {
		return nil, err
	}
	mx, my, mz, err := r.ThreeBD()
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
	rotation, err := r.BD()
	if err != nil {
		return nil, err
	}
	userText, err := r.T(ver)
	if err != nil {
		return nil, err
	}
	textRotation, err := r.BD()
	if err != nil {
		return nil, err
	}
	hAttach, err := r.BS()
	if err != nil {
		return nil, err
	}
	vAttach, err := r.BS()
	if err != nil {
		return nil, err
	}
	subtype, err := r.RC()
	if err != nil {
		return nil, err
	}

	dim := Dimension{
		BlockHandle:      blockHandle.Value,
		DimStyleHandle:   dimStyleHandle.Value,
		ExtrusionDir:     Vec3{ex, ey, ez},
		TextMidpoint:     Vec3{mx, my, mz},
		InsertionPoint:   [2]float64{ix, iy},
		Rotation:         normalizeDegrees(rotation),
		UserText:         userText,
		TextRotation:     normalizeDegrees(textRotation),
		HorizontalAttach: hAttach,
		VerticalAttach:   vAttach,
	}

	switch subtype & 0x07 {
	case dimSubtypeLinear:
		dim.Kind = DimensionLinear
		fx, fy, fz, err := r.ThreeBD()
		if err != nil {
			return nil, err
		}
		sx, sy, sz, err := r.ThreeBD()
		if err != nil {
			return nil, err
		}
		lx, ly, lz, err := r.ThreeBD()
		if err != nil {
			return nil, err
		}
		extAngle, err := r.BD()
		if err != nil {
			return nil, err
		}
		dim.FirstExtLine = Vec3{fx, fy, fz}
		dim.SecondExtLine = Vec3{sx, sy, sz}
		dim.DimLinePoint = Vec3{lx, ly, lz}
		dim.ExtLineAngle = normalizeDegrees(extAngle)

	case dimSubtypeRadius, dimSubtypeDiameter:
		if subtype&0x07 == dimSubtypeRadius {
			dim.Kind = DimensionRadius
		} else {
			dim.Kind = DimensionDiameter
		}
		cx, cy, cz, err := r.ThreeBD()
		if err != nil {
			return nil, err
		}
		chx, chy, chz, err := r.ThreeBD()
		if err != nil {
			return nil, err
		}
		leader, err := r.BD()
		if err != nil {
			return nil, err
		}
		dim.Center = Vec3{cx, cy, cz}
		dim.ChordPoint = Vec3{chx, chy, chz}
		dim.LeaderLength = leader

	default:
		return nil, errs.ErrCorruptStream
	}

	if ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, common); err != nil {
			return nil, err
		}
	}

	return &dim, nil
}
