package entity

import (
	"testing"

	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
	"github.com/stretchr/testify/require"
)

func TestDecode_Dimension_Linear_AC1015(t *testing.T) {
	w := &bitWriter{}
	w.writeCommonAC1015(0x50, 0x05)

	w.writeH(5, 0x99) // block handle
	w.writeH(5, 0x88) // dimstyle handle

	w.writeBDZero() // extrusion.x
	w.writeBDZero() // extrusion.y
	w.writeBDOne()  // extrusion.z
	w.writeBD(5.0)  // text midpoint.x
	w.writeBD(6.0)  // text midpoint.y
	w.writeBDZero() // text midpoint.z
	w.writeRD(1.0)  // insertion.x
	w.writeRD(2.0)  // insertion.y
	w.writeBDZero() // rotation
	w.writeT_AC1015("12.5")
	w.writeBDZero() // text rotation
	w.writeBSZero() // horizontal attach
	w.writeBSZero() // vertical attach
	w.writeRC(dimSubtypeLinear)

	w.writeBDZero() // first ext line.x
	w.writeBDZero() // first ext line.y
	w.writeBDZero() // first ext line.z
	w.writeBD(10.0) // second ext line.x
	w.writeBDZero() // second ext line.y
	w.writeBDZero() // second ext line.z
	w.writeBD(5.0)  // dim line point.x
	w.writeBDZero() // dim line point.y
	w.writeBDZero() // dim line point.z
	w.writeBDZero() // ext line angle

	r := bitstream.New(w.bytes())
	rec, err := Decode(TypeDimension, r, format.VersionAC1015)
	require.NoError(t, err)

	dim, ok := rec.Data.(*Dimension)
	require.True(t, ok)
	require.Equal(t, DimensionLinear, dim.Kind)
	require.Equal(t, "12.5", dim.UserText)
	require.Equal(t, uint64(0x99), dim.BlockHandle)
	require.Equal(t, uint64(0x88), dim.DimStyleHandle)
	require.Equal(t, Vec3{10.0, 0, 0}, dim.SecondExtLine)
}
