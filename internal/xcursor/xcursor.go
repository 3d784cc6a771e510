// xcursor forked from https://github.com/BurntSushi/xgbutil/blob/master/xcursor/xcursor.go
package xcursor

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Glyph indexes into the X cursor font.
const (
	XCursor      = 0
	Arrow        = 2
	CenterPtr    = 22
	Crosshair    = 34
	Dot          = 38
	Hand1        = 58
	Hand2        = 60
	LeftPtr      = 68
	RightPtr     = 94
	TCross       = 130
	TopLeftArrow = 132
	XTerm        = 152
)

var glyphs = map[string]uint16{
	"X_cursor":       XCursor,
	"arrow":          Arrow,
	"center_ptr":     CenterPtr,
	"crosshair":      Crosshair,
	"dot":            Dot,
	"hand1":          Hand1,
	"hand2":          Hand2,
	"left_ptr":       LeftPtr,
	"right_ptr":      RightPtr,
	"tcross":         TCross,
	"top_left_arrow": TopLeftArrow,
	"xterm":          XTerm,
}

// Glyph returns the cursor font index for a cursor name such as "left_ptr".
func Glyph(name string) (uint16, bool) {
	glyph, ok := glyphs[name]
	return glyph, ok
}

// Load creates a white-on-black cursor from the named glyph.
func Load(x *xgb.Conn, name string) (xproto.Cursor, error) {
	glyph, ok := Glyph(name)
	if !ok {
		return 0, fmt.Errorf("cursor %q: unknown glyph", name)
	}

	return CreateCursor(x, glyph)
}

func CreateCursor(x *xgb.Conn, cursor uint16) (xproto.Cursor, error) {
	return CreateCursorExtra(x, cursor, 0xffff, 0xffff, 0xffff, 0, 0, 0)
}

func CreateCursorExtra(x *xgb.Conn, cursor, foreRed, foreGreen,
	foreBlue, backRed, backGreen, backBlue uint16) (xproto.Cursor, error) {

	fontId, err := xproto.NewFontId(x)
	if err != nil {
		return 0, err
	}

	cursorId, err := xproto.NewCursorId(x)
	if err != nil {
		return 0, err
	}

	err = xproto.OpenFontChecked(x, fontId,
		uint16(len("cursor")), "cursor").Check()
	if err != nil {
		return 0, err
	}
	// The cursor keeps its glyph after the font is gone.
	defer xproto.CloseFont(x, fontId)

	err = xproto.CreateGlyphCursorChecked(x, cursorId, fontId, fontId,
		cursor, cursor+1,
		foreRed, foreGreen, foreBlue,
		backRed, backGreen, backBlue).Check()
	if err != nil {
		return 0, err
	}

	return cursorId, nil
}
