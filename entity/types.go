package entity

// Vec3 is a 3D point or vector: x, y, z.
type Vec3 = [3]float64

// Record is the normalized decode result for one object: the common
// header, a dxftype tag, and the type-specific data (nil for UNSUPPORTED).
type Record struct {
	Type    string
	RawType uint16
	Common  CommonHeader
	Data    any
}

// Line is the normalized LINE entity.
type Line struct {
	Start     Vec3
	End       Vec3
	Thickness float64
	Extrusion Vec3
}

// Arc is the normalized ARC entity. Angles are stored in degrees, in
// [0, 360).
type Arc struct {
	Center     Vec3
	Radius     float64
	Thickness  float64
	Extrusion  Vec3
	StartAngle float64
	EndAngle   float64

	// StartAngleRad/EndAngleRad preserve the as-read radian values before
	// the [0, 360) degree normalization above, for the raw decode surface.
	StartAngleRad float64
	EndAngleRad   float64
}

// Point is the normalized POINT entity.
type Point struct {
	Position  Vec3
	Thickness float64
	Extrusion Vec3
	Angle     float64
}

// Circle is the normalized CIRCLE entity.
type Circle struct {
	Center    Vec3
	Radius    float64
	Thickness float64
	Extrusion Vec3
}

// Ellipse is the normalized ELLIPSE entity. Angles are stored in degrees.
type Ellipse struct {
	Center            Vec3
	MajorAxisEndpoint Vec3
	Extrusion         Vec3
	AxisRatio         float64
	StartAngle        float64
	EndAngle          float64
}

// LWPolylineWidth is a per-vertex (start, end) width pair.
type LWPolylineWidth struct {
	Start, End float64
}

// LWPolyline is the normalized LWPOLYLINE entity.
type LWPolyline struct {
	ConstWidth float64
	Elevation  float64
	Thickness  float64
	Extrusion  Vec3
	Points     [][2]float64
	Bulges     []float64
	Widths     []LWPolylineWidth
}

// Text is the normalized TEXT entity.
type Text struct {
	InsertionPoint       [2]float64
	AlignmentPoint       [2]float64
	Elevation            float64
	Extrusion            Vec3
	Thickness            float64
	ObliqueAngle         float64
	RotationAngle        float64
	Height               float64
	WidthFactor          float64
	Value                string
	GenerationFlags      uint16
	HorizontalAlignment  uint16
	VerticalAlignment    uint16
}

// MText is the normalized MTEXT entity.
type MText struct {
	InsertionPoint  Vec3
	Extrusion       Vec3
	XAxisDir        Vec3
	RectWidth       float64
	TextHeight      float64
	Attachment      uint16
	DrawingDir      uint16
	ExtentsHeight   float64
	ExtentsWidth    float64
	Value           string
	LineSpaceStyle  uint16
	LineSpaceFactor float64
}

// DimensionKind identifies which DIMENSION subtype a record holds.
type DimensionKind string

const (
	DimensionLinear   DimensionKind = "LINEAR"
	DimensionRadius   DimensionKind = "RADIUS"
	DimensionDiameter DimensionKind = "DIAMETER"
)

// Dimension is the normalized DIMENSION entity: the prologue common to
// every subtype, plus one of the subtype-specific field sets.
type Dimension struct {
	Kind             DimensionKind
	BlockHandle      uint64
	DimStyleHandle   uint64
	ExtrusionDir     Vec3
	TextMidpoint     Vec3
	InsertionPoint   [2]float64
	Rotation         float64
	UserText         string
	TextRotation     float64
	HorizontalAttach uint16
	VerticalAttach   uint16

	// Linear only.
	FirstExtLine  Vec3
	SecondExtLine Vec3
	DimLinePoint  Vec3
	ExtLineAngle  float64

	// Radius and Diameter.
	Center      Vec3
	ChordPoint  Vec3
	LeaderLength float64
}

// Insert is the supplemented INSERT (block reference) entity.
type Insert struct {
	BlockHandle    uint64
	InsertionPoint Vec3
	Scale          Vec3
	Rotation       float64
	RotationRad    float64 // as-read radians, pre-normalization
	Extrusion      Vec3
	ColumnCount    uint16
	RowCount       uint16
	ColumnSpacing  float64
	RowSpacing     float64
}
