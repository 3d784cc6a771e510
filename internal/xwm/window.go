package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// SurfaceEventMask selects the notifications a bar surface receives.
const SurfaceEventMask = xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease

type Window struct {
	WID    xproto.Window
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// CreateSurface creates an unmapped child of root. X rejects zero sized
// windows, so empty dimensions are raised to one pixel.
func CreateSurface(conn *xgb.Conn, root xproto.Window, x, y int16, w, h uint16, background uint32, cursor xproto.Cursor) (Window, error) {
	w, h = max(w, 1), max(h, 1)

	// Generate X window id
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return Window{}, err
	}

	if err := xproto.CreateWindowChecked(conn, xproto.WindowClassCopyFromParent,
		wid, root,
		x, y, w, h, 0,
		xproto.WindowClassInputOutput, xproto.WindowClassCopyFromParent,
		xproto.CwBackPixel|xproto.CwEventMask|xproto.CwCursor, // 1, 2, 3
		[]uint32{
			background,       // 1
			SurfaceEventMask, // 2
			uint32(cursor),   // 3
		}).Check(); err != nil {
		return Window{}, err
	}

	return Window{
		WID:    wid,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}, nil
}

func MapSurface(conn *xgb.Conn, wid xproto.Window) error {
	return xproto.MapWindowChecked(conn, wid).Check()
}
