package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Struts reserve a nominal sliver, not the bar height, over a fixed span
// that is independent of the output width.
const (
	StrutThickness = 1
	StrutSpan      = 800
)

// StrutPartial is the twelve field _NET_WM_STRUT_PARTIAL value.
type StrutPartial struct {
	Left, Right, Top, Bottom uint32
	LeftStartY, LeftEndY     uint32
	RightStartY, RightEndY   uint32
	TopStartX, TopEndX       uint32
	BottomStartX, BottomEndX uint32
}

// TopStrut reserves the top edge.
func TopStrut() StrutPartial {
	return StrutPartial{
		Top:       StrutThickness,
		TopStartX: 0,
		TopEndX:   StrutSpan,
	}
}

// BottomStrut reserves the bottom edge.
func BottomStrut() StrutPartial {
	return StrutPartial{
		Bottom:       StrutThickness,
		BottomStartX: 0,
		BottomEndX:   StrutSpan,
	}
}

// Values returns the fields in EWMH order.
func (s StrutPartial) Values() []uint32 {
	return []uint32{
		s.Left, s.Right, s.Top, s.Bottom,
		s.LeftStartY, s.LeftEndY,
		s.RightStartY, s.RightEndY,
		s.TopStartX, s.TopEndX,
		s.BottomStartX, s.BottomEndX,
	}
}

// SetDock marks the window as _NET_WM_WINDOW_TYPE_DOCK.
func SetDock(conn *xgb.Conn, atoms Atoms, wid xproto.Window) error {
	return xproto.ChangePropertyChecked(conn, xproto.PropModeReplace, wid,
		atoms.WmWindowType, xproto.AtomAtom, 32,
		1, encode32(uint32(atoms.WmWindowTypeDock))).Check()
}

// SetStrutPartial reserves screen space for the window.
func SetStrutPartial(conn *xgb.Conn, atoms Atoms, wid xproto.Window, strut StrutPartial) error {
	values := strut.Values()
	return xproto.ChangePropertyChecked(conn, xproto.PropModeReplace, wid,
		atoms.WmStrutPartial, xproto.AtomCardinal, 32,
		uint32(len(values)), encode32(values...)).Check()
}

func encode32(values ...uint32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		xgb.Put32(buf[i*4:], v)
	}
	return buf
}
