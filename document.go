package dwg

import (
	"math"
	"strings"

	"github.com/cadkit/dwgread/entity"
	"github.com/cadkit/dwgread/format"
	"github.com/cadkit/dwgread/internal/hash"
)

// modelLayoutName is the one layout guaranteed to exist in every decoded
// document.
const modelLayoutName = "Model"

// Entity wraps one decoded entity.Record with the accessors the query
// surface exposes.
type Entity struct {
	rec entity.Record
}

// DxfType returns the entity's type tag ("LINE", "ARC", ..., or
// "UNSUPPORTED" for a type code outside the decoder's table).
func (e Entity) DxfType() string { return e.rec.Type }

// Handle returns the entity's object handle value.
func (e Entity) Handle() uint64 { return e.rec.Common.Handle.Value }

// Record exposes the underlying normalized entity.Record, for callers that
// need the typed Data payload rather than the generic field map.
func (e Entity) Record() entity.Record { return e.rec }

// Dxf returns a field-name-to-value map over the entity's type-specific
// data, with angles already normalized to degrees. Keys are snake_case
// field names ("start_angle", "major_axis", ...); every map also carries
// "handle", "dxftype" and "layer" (the layer handle value, or nil when the
// layer handle is zero).
func (e Entity) Dxf() map[string]any {
	degrees := func(rad float64) float64 {
		deg := math.Mod(rad*180/math.Pi, 360)
		if deg < 0 {
			deg += 360
		}
		return deg
	}
	out := map[string]any{
		"handle":  e.Handle(),
		"dxftype": e.rec.Type,
	}
	if lh := e.rec.Common.LayerHandle; !lh.IsZero() {
		out["layer"] = lh.Value
	} else {
		out["layer"] = nil
	}
	switch d := e.rec.Data.(type) {
	case *entity.Line:
		out["start"] = d.Start
		out["end"] = d.End
		out["thickness"] = d.Thickness
		out["extrusion"] = d.Extrusion
	case *entity.Arc:
		out["center"] = d.Center
		out["radius"] = d.Radius
		out["start_angle"] = d.StartAngle
		out["end_angle"] = d.EndAngle
		out["thickness"] = d.Thickness
		out["extrusion"] = d.Extrusion
	case *entity.Point:
		out["position"] = d.Position
		out["thickness"] = d.Thickness
		out["extrusion"] = d.Extrusion
		out["angle"] = degrees(d.Angle)
	case *entity.Circle:
		out["center"] = d.Center
		out["radius"] = d.Radius
		out["thickness"] = d.Thickness
		out["extrusion"] = d.Extrusion
	case *entity.Ellipse:
		out["center"] = d.Center
		out["major_axis"] = d.MajorAxisEndpoint
		out["ratio"] = d.AxisRatio
		out["start_param"] = d.StartAngle
		out["end_param"] = d.EndAngle
		out["extrusion"] = d.Extrusion
	case *entity.LWPolyline:
		out["const_width"] = d.ConstWidth
		out["elevation"] = d.Elevation
		out["thickness"] = d.Thickness
		out["extrusion"] = d.Extrusion
		out["points"] = d.Points
		out["bulges"] = d.Bulges
		out["widths"] = d.Widths
	case *entity.Text:
		out["insert"] = d.InsertionPoint
		out["align"] = d.AlignmentPoint
		out["height"] = d.Height
		out["rotation"] = degrees(d.RotationAngle)
		out["width_factor"] = d.WidthFactor
		out["oblique"] = degrees(d.ObliqueAngle)
		out["text"] = d.Value
		out["generation_flags"] = d.GenerationFlags
		out["h_align"] = d.HorizontalAlignment
		out["v_align"] = d.VerticalAlignment
	case *entity.MText:
		out["insert"] = d.InsertionPoint
		out["x_axis"] = d.XAxisDir
		out["width"] = d.RectWidth
		out["height"] = d.TextHeight
		out["attach_point"] = d.Attachment
		out["drawing_dir"] = d.DrawingDir
		out["text"] = d.Value
		out["line_spacing_style"] = d.LineSpaceStyle
		out["line_spacing_factor"] = d.LineSpaceFactor
	case *entity.Dimension:
		out["subtype"] = d.Kind
		out["text_midpoint"] = d.TextMidpoint
		out["insertion"] = d.InsertionPoint
		out["rotation"] = d.Rotation
		out["text"] = d.UserText
		out["dim_style_handle"] = d.DimStyleHandle
		out["block_handle"] = d.BlockHandle
	case *entity.Insert:
		out["block_handle"] = d.BlockHandle
		out["insert"] = d.InsertionPoint
		out["scale"] = d.Scale
		out["rotation"] = d.Rotation
		out["extrusion"] = d.Extrusion
	}
	return out
}

// Layout is an ordered sequence of entities owned by one drawing layout
// (model space, or a paper space block).
type Layout struct {
	Name     string
	entities []Entity
}

// Query returns the entities in the layout whose DxfType matches typeSpec:
// either "*" (everything) or a whitespace-separated list of type names.
// Iteration order matches the layout's source order.
func (l *Layout) Query(typeSpec string) []Entity {
	typeSpec = strings.TrimSpace(typeSpec)
	if typeSpec == "" || typeSpec == "*" {
		out := make([]Entity, len(l.entities))
		copy(out, l.entities)
		return out
	}
	want := make(map[string]bool)
	for _, t := range strings.Fields(typeSpec) {
		want[t] = true
	}
	out := make([]Entity, 0, len(l.entities))
	for _, e := range l.entities {
		if want[e.DxfType()] {
			out = append(out, e)
		}
	}
	return out
}

// Document is the decoded, immutable in-memory form of one DWG file.
type Document struct {
	Version           format.Version
	layouts           map[string]*Layout
	entitiesByHandle  map[uint64]Entity
	acDbObjectsDigest []byte
}

// Modelspace returns the guaranteed "Model" layout.
func (d *Document) Modelspace() *Layout { return d.layouts[modelLayoutName] }

// Layouts returns every known layout, keyed by name.
func (d *Document) Layouts() map[string]*Layout { return d.layouts }

// EntityByHandle resolves a handle to its decoded entity.
func (d *Document) EntityByHandle(handle uint64) (Entity, bool) {
	e, ok := d.entitiesByHandle[handle]
	return e, ok
}

// Fingerprint returns a 64-bit xxHash content digest over the reassembled
// AcDbObjects bytes (the object map's pairs are not hashed), letting tooling dedupe repeated inspections of the same drawing
// without re-decoding it. Not a DWG format feature: a diagnostic aid only.
func (d *Document) Fingerprint() uint64 {
	return hash.ID(string(d.acDbObjectsDigest))
}
