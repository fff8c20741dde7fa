package entity

import (
	"testing"

	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
	"github.com/stretchr/testify/require"
)

func TestDecode_Line_AC1015(t *testing.T) {
	w := &bitWriter{}
	w.writeCommonAC1015(0x10, 0x05)

	w.writeB(true) // z_is_zero
	w.writeBDZero()
	w.writeBDOne() // p1.x = 1.0
	w.writeBDZero()
	w.writeBDZero()
	w.writeBT(false, 0)          // thickness default
	w.writeBE(false, 0, 0, 1)    // extrusion default

	r := bitstream.New(w.bytes())
	rec, err := Decode(TypeLine, r, format.VersionAC1015)
	require.NoError(t, err)
	require.Equal(t, "LINE", rec.Type)

	line, ok := rec.Data.(*Line)
	require.True(t, ok)
	require.Equal(t, Vec3{0, 0, 0}, line.Start)
	require.Equal(t, Vec3{1, 0, 0}, line.End)
	require.Equal(t, 0.0, line.Thickness)
	require.Equal(t, Vec3{0, 0, 1}, line.Extrusion)
	require.Equal(t, uint64(0x10), rec.Common.Handle.Value)
	require.Equal(t, uint64(0x05), rec.Common.OwnerHandle.Value)
}

func TestDecode_UnsupportedType(t *testing.T) {
	r := bitstream.New([]byte{0x00})
	rec, err := Decode(9999, r, format.VersionAC1015)
	require.NoError(t, err)
	require.Equal(t, "UNSUPPORTED", rec.Type)
	require.Equal(t, uint16(9999), rec.RawType)
}
