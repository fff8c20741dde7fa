package entity

import (
	"math"
	"testing"

	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
	"github.com/stretchr/testify/require"
)

func TestDecode_Arc_AC1015_AngleNormalization(t *testing.T) {
	w := &bitWriter{}
	w.writeCommonAC1015(0x20, 0x05)

	w.writeBDZero() // center.x
	w.writeBDZero() // center.y
	w.writeBDZero() // center.z
	w.writeBD(5.0)  // radius
	w.writeBT(false, 0)
	w.writeBE(false, 0, 0, 1)
	w.writeBD(0)          // start angle 0 rad -> 0 deg
	w.writeBD(-math.Pi/2) // end angle -90deg -> normalized to 270

	r := bitstream.New(w.bytes())
	rec, err := Decode(TypeArc, r, format.VersionAC1015)
	require.NoError(t, err)

	arc, ok := rec.Data.(*Arc)
	require.True(t, ok)
	require.Equal(t, 5.0, arc.Radius)
	require.InDelta(t, 0.0, arc.StartAngle, 1e-9)
	require.InDelta(t, 270.0, arc.EndAngle, 1e-9)
}
