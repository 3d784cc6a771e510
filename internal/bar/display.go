package bar

import (
	"github.com/ItsNotGoodName/x-oledbar/internal/placement"
	"github.com/ItsNotGoodName/x-oledbar/internal/xcursor"
	"github.com/ItsNotGoodName/x-oledbar/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// AtomsReply is a pending atom lookup.
type AtomsReply interface {
	Reply() (xwm.Atoms, error)
}

// Display is the part of the X server the bars are built on.
type Display interface {
	xwm.Conn
	RandR() placement.RandR
	InternAtoms() AtomsReply
	LoadCursor(name string) (xproto.Cursor, error)
	CreateSurface(rect placement.Rect, background uint32, cursor xproto.Cursor) (xwm.Window, error)
	MapSurface(wid xproto.Window) error
	SetDock(atoms xwm.Atoms, wid xproto.Window) error
	SetStrutPartial(atoms xwm.Atoms, wid xproto.Window, strut xwm.StrutPartial) error
}

type x11Display struct {
	*xgb.Conn
	root xproto.Window
}

// NewDisplay uses the default screen of conn.
func NewDisplay(conn *xgb.Conn) Display {
	return x11Display{
		Conn: conn,
		root: xproto.Setup(conn).DefaultScreen(conn).Root,
	}
}

func (d x11Display) RandR() placement.RandR {
	return placement.NewConn(d.Conn, d.root)
}

func (d x11Display) InternAtoms() AtomsReply {
	return xwm.InternAtoms(d.Conn)
}

func (d x11Display) LoadCursor(name string) (xproto.Cursor, error) {
	return xcursor.Load(d.Conn, name)
}

func (d x11Display) CreateSurface(rect placement.Rect, background uint32, cursor xproto.Cursor) (xwm.Window, error) {
	return xwm.CreateSurface(d.Conn, d.root, rect.X, rect.Y, rect.Width, rect.Height, background, cursor)
}

func (d x11Display) MapSurface(wid xproto.Window) error {
	return xwm.MapSurface(d.Conn, wid)
}

func (d x11Display) SetDock(atoms xwm.Atoms, wid xproto.Window) error {
	return xwm.SetDock(d.Conn, atoms, wid)
}

func (d x11Display) SetStrutPartial(atoms xwm.Atoms, wid xproto.Window, strut xwm.StrutPartial) error {
	return xwm.SetStrutPartial(d.Conn, atoms, wid, strut)
}
