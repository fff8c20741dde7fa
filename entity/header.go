package entity

import (
	"github.com/cadkit/dwgread/bitstream"
	"github.com/cadkit/dwgread/format"
)

// CommonHeader holds the fields every entity object carries ahead of its
// type-specific data, per C7.
type CommonHeader struct {
	Version        format.Version
	Handle         bitstream.Handle
	ObjectSizeBits uint32 // set for AC1021+, zero otherwise

	Mode        uint8
	NumReactors uint32

	HasXDict      bool
	IsBinaryXData bool

	PlotStyleFlag     bool
	LayerFlag         bool
	LinetypeFlag      bool
	Invisible         bool
	Color             bitstream.Color
	LtScale           float64
	PlotStyleNameFlag bool
	MaterialFlag      bool
	ShadowFlag        bool
	LineWeight        uint8 // AC1018+

	OwnerHandle     bitstream.Handle
	ReactorHandles  []bitstream.Handle
	XDictHandle     bitstream.Handle
	LayerHandle     bitstream.Handle
	LinetypeHandle  bitstream.Handle
	MaterialHandle  bitstream.Handle
	PlotStyleHandle bitstream.Handle
}

// ParseCommonHeader reads the C7 prologue. For AC1015 and AC1018 the
// trailing handles are read inline here, in the order the format lays them
// out; for AC1021+ they are deferred to ParseTrailingHandles, called by the
// type-specific parser once it has consumed its own fields.
func ParseCommonHeader(r *bitstream.Reader, ver format.Version) (CommonHeader, error) {
	var h CommonHeader
	h.Version = ver

	if ver.AtLeast(format.VersionAC1024) {
		extraSize, err := r.RC()
		if err != nil {
			return h, err
		}
		for i := uint8(0); i < extraSize; i++ {
			if _, err := r.RC(); err != nil {
				return h, err
			}
		}
	}

	if ver.AtLeast(format.VersionAC1021) {
		sizeBits, err := r.RL()
		if err != nil {
			return h, err
		}
		h.ObjectSizeBits = sizeBits
	}

	handle, err := r.H()
	if err != nil {
		return h, err
	}
	h.Handle = handle

	xdataSize, err := r.BL()
	if err != nil {
		return h, err
	}
	if xdataSize > 0 {
		if _, err := r.H(); err != nil { // appid handle
			return h, err
		}
		for i := uint32(0); i < xdataSize; i++ {
			if _, err := r.RC(); err != nil {
				return h, err
			}
		}
	}

	hasGraphics, err := r.B()
	if err != nil {
		return h, err
	}
	if hasGraphics {
		sz, err := r.RL()
		if err != nil {
			return h, err
		}
		for i := uint32(0); i < sz; i++ {
			if _, err := r.RC(); err != nil {
				return h, err
			}
		}
	}

	mode, err := r.BB()
	if err != nil {
		return h, err
	}
	h.Mode = mode

	numReactors, err := r.BL()
	if err != nil {
		return h, err
	}
	h.NumReactors = numReactors

	if h.HasXDict, err = r.B(); err != nil {
		return h, err
	}
	if ver.AtLeast(format.VersionAC1024) {
		if h.IsBinaryXData, err = r.B(); err != nil {
			return h, err
		}
	}
	if h.PlotStyleFlag, err = r.B(); err != nil {
		return h, err
	}
	if h.LayerFlag, err = r.B(); err != nil {
		return h, err
	}
	if h.LinetypeFlag, err = r.B(); err != nil {
		return h, err
	}
	if h.Invisible, err = r.B(); err != nil {
		return h, err
	}
	color, err := r.CMC(ver)
	if err != nil {
		return h, err
	}
	h.Color = color
	ltscale, err := r.BD()
	if err != nil {
		return h, err
	}
	h.LtScale = ltscale
	if h.PlotStyleNameFlag, err = r.B(); err != nil {
		return h, err
	}
	if h.MaterialFlag, err = r.B(); err != nil {
		return h, err
	}
	if h.ShadowFlag, err = r.B(); err != nil {
		return h, err
	}
	if ver.HasSystemSections() { // AC1018+
		lw, err := r.RC()
		if err != nil {
			return h, err
		}
		h.LineWeight = lw
	}

	if !ver.AtLeast(format.VersionAC1021) {
		if err := ParseTrailingHandles(r, ver, &h); err != nil {
			return h, err
		}
	}

	return h, nil
}

// ParseTrailingHandles reads the owner, reactor, xdict, layer, linetype,
// material, and plot-style handles that the format places inline for
// AC1015/AC1018 (called from ParseCommonHeader) and at the object's end for
// AC1021+ (called by the type-specific parser once its own fields are
// consumed).
func ParseTrailingHandles(r *bitstream.Reader, ver format.Version, h *CommonHeader) error {
	owner, err := r.H()
	if err != nil {
		return err
	}
	h.OwnerHandle = owner

	h.ReactorHandles = make([]bitstream.Handle, h.NumReactors)
	for i := range h.ReactorHandles {
		hnd, err := r.H()
		if err != nil {
			return err
		}
		h.ReactorHandles[i] = hnd
	}

	if h.HasXDict {
		if h.XDictHandle, err = r.H(); err != nil {
			return err
		}
	}
	if h.LayerFlag {
		if h.LayerHandle, err = r.H(); err != nil {
			return err
		}
	}
	if h.LinetypeFlag {
		if h.LinetypeHandle, err = r.H(); err != nil {
			return err
		}
	}
	if h.MaterialFlag {
		if h.MaterialHandle, err = r.H(); err != nil {
			return err
		}
	}
	if h.PlotStyleNameFlag {
		if h.PlotStyleHandle, err = r.H(); err != nil {
			return err
		}
	}
	return nil
}
