package raw

import (
	dwg "github.com/cadkit/dwgread"
	"github.com/cadkit/dwgread/entity"
)

func decode(path string) (*dwg.Document, error) {
	return dwg.Read(path)
}

// DecodeLineEntities returns every LINE entity in path's model space, as
// decoded (no unit/angle normalization applies to LINE).
func DecodeLineEntities(path string) ([]*entity.Line, error) {
	doc, err := decode(path)
	if err != nil {
		return nil, err
	}
	var out []*entity.Line
	for _, e := range doc.Modelspace().Query("LINE") {
		if l, ok := e.Record().Data.(*entity.Line); ok {
			out = append(out, l)
		}
	}
	return out, nil
}

// DecodeArcEntities returns every ARC entity in path's model space, with
// StartAngleRad/EndAngleRad holding the as-read radian values (StartAngle/
// EndAngle still carry the normalized-degree surface, unchanged).
func DecodeArcEntities(path string) ([]*entity.Arc, error) {
	doc, err := decode(path)
	if err != nil {
		return nil, err
	}
	var out []*entity.Arc
	for _, e := range doc.Modelspace().Query("ARC") {
		if a, ok := e.Record().Data.(*entity.Arc); ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// DecodeLWPolylineEntities returns every LWPOLYLINE entity in path's model
// space.
func DecodeLWPolylineEntities(path string) ([]*entity.LWPolyline, error) {
	doc, err := decode(path)
	if err != nil {
		return nil, err
	}
	var out []*entity.LWPolyline
	for _, e := range doc.Modelspace().Query("LWPOLYLINE") {
		if p, ok := e.Record().Data.(*entity.LWPolyline); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// DecodeInsertEntities returns every INSERT entity in path's model space,
// with RotationRad holding the as-read radian value.
func DecodeInsertEntities(path string) ([]*entity.Insert, error) {
	doc, err := decode(path)
	if err != nil {
		return nil, err
	}
	var out []*entity.Insert
	for _, e := range doc.Modelspace().Query("INSERT") {
		if i, ok := e.Record().Data.(*entity.Insert); ok {
			out = append(out, i)
		}
	}
	return out, nil
}
