package xwm

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	atomWmWindowType     = "_NET_WM_WINDOW_TYPE"
	atomWmWindowTypeDock = "_NET_WM_WINDOW_TYPE_DOCK"
	atomWmStrutPartial   = "_NET_WM_STRUT_PARTIAL"
)

// Atoms holds the EWMH atoms used to turn a window into a dock.
type Atoms struct {
	WmWindowType     xproto.Atom
	WmWindowTypeDock xproto.Atom
	WmStrutPartial   xproto.Atom
}

// AtomsCookie is a batch of in-flight InternAtom requests.
type AtomsCookie struct {
	wmWindowType     xproto.InternAtomCookie
	wmWindowTypeDock xproto.InternAtomCookie
	wmStrutPartial   xproto.InternAtomCookie
}

// InternAtoms sends every InternAtom request without waiting for replies.
func InternAtoms(conn *xgb.Conn) AtomsCookie {
	return AtomsCookie{
		wmWindowType:     internAtom(conn, atomWmWindowType),
		wmWindowTypeDock: internAtom(conn, atomWmWindowTypeDock),
		wmStrutPartial:   internAtom(conn, atomWmStrutPartial),
	}
}

// Reply waits for all atoms.
func (c AtomsCookie) Reply() (Atoms, error) {
	var (
		atoms Atoms
		err   error
	)

	if atoms.WmWindowType, err = atomReply(c.wmWindowType, atomWmWindowType); err != nil {
		return Atoms{}, err
	}
	if atoms.WmWindowTypeDock, err = atomReply(c.wmWindowTypeDock, atomWmWindowTypeDock); err != nil {
		return Atoms{}, err
	}
	if atoms.WmStrutPartial, err = atomReply(c.wmStrutPartial, atomWmStrutPartial); err != nil {
		return Atoms{}, err
	}

	return atoms, nil
}

func internAtom(conn *xgb.Conn, name string) xproto.InternAtomCookie {
	return xproto.InternAtom(conn, false, uint16(len(name)), name)
}

func atomReply(cookie xproto.InternAtomCookie, name string) (xproto.Atom, error) {
	reply, err := cookie.Reply()
	if err != nil {
		return 0, fmt.Errorf("could not get atom %s: %w", name, err)
	}
	if reply == nil {
		return 0, fmt.Errorf("could not get atom %s", name)
	}
	return reply.Atom, nil
}
