package bar

import (
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/x-oledbar/internal/offset"
	"github.com/ItsNotGoodName/x-oledbar/internal/placement"
	"github.com/ItsNotGoodName/x-oledbar/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Options struct {
	Offset     offset.Pair
	Background uint32
	Cursor     string
}

// Layout is where both bars go and what they reserve.
type Layout struct {
	Top         placement.Rect
	Bottom      placement.Rect
	TopStrut    xwm.StrutPartial
	BottomStrut xwm.StrutPartial
}

// Resolve computes the layout for an offset pair.
func Resolve(q placement.RandR, pair offset.Pair) Layout {
	return Layout{
		Top:         placement.Resolve(q, uint16(pair.Top())),
		Bottom:      placement.Resolve(q, uint16(pair.Bottom())),
		TopStrut:    xwm.TopStrut(),
		BottomStrut: xwm.BottomStrut(),
	}
}

// Setup creates, maps and docks both bars on the default screen.
func Setup(conn *xgb.Conn, opts Options) (*Controller, error) {
	return SetupDisplay(NewDisplay(conn), opts)
}

// SetupDisplay runs the creation sequence against d.
func SetupDisplay(d Display, opts Options) (*Controller, error) {
	// Place requests for the atoms as soon as possible
	atomsCookie := d.InternAtoms()

	layout := Resolve(d.RandR(), opts.Offset)
	slog.Debug("Resolved layout", "offset", opts.Offset, "top", layout.Top, "bottom", layout.Bottom)

	cursor, err := d.LoadCursor(opts.Cursor)
	if err != nil {
		slog.Warn("Failed to load cursor, using parent cursor", "cursor", opts.Cursor, "error", err)
		cursor = xproto.CursorNone
	}

	top, err := createSurface(d, Top, layout.Top, opts.Background, cursor)
	if err != nil {
		return nil, fmt.Errorf("top bar: %w", err)
	}
	bottom, err := createSurface(d, Bottom, layout.Bottom, opts.Background, cursor)
	if err != nil {
		return nil, fmt.Errorf("bottom bar: %w", err)
	}

	for _, s := range []Surface{top, bottom} {
		if err := d.MapSurface(s.WID); err != nil {
			return nil, fmt.Errorf("%s bar: %w", s.Edge, err)
		}
	}

	atoms, err := atomsCookie.Reply()
	if err != nil {
		return nil, err
	}

	struts := [len(edges)]xwm.StrutPartial{layout.TopStrut, layout.BottomStrut}
	for _, s := range []Surface{top, bottom} {
		if err := d.SetDock(atoms, s.WID); err != nil {
			return nil, fmt.Errorf("%s bar: set dock: %w", s.Edge, err)
		}
		if err := d.SetStrutPartial(atoms, s.WID, struts[s.Edge]); err != nil {
			return nil, fmt.Errorf("%s bar: set strut: %w", s.Edge, err)
		}
	}

	return NewController(d, top, bottom), nil
}

func createSurface(d Display, edge Edge, rect placement.Rect, background uint32, cursor xproto.Cursor) (Surface, error) {
	window, err := d.CreateSurface(rect, background, cursor)
	if err != nil {
		return Surface{}, err
	}

	return Surface{
		Edge: edge,
		WID:  window.WID,
		Rect: rect,
	}, nil
}
