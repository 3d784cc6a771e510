package bar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ItsNotGoodName/x-oledbar/internal/offset"
	"github.com/ItsNotGoodName/x-oledbar/internal/placement"
	"github.com/ItsNotGoodName/x-oledbar/internal/xwm"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noRandR struct{}

func (noRandR) GetOutputPrimary() (*randr.GetOutputPrimaryReply, error) {
	return &randr.GetOutputPrimaryReply{}, nil
}

func (noRandR) GetScreenResourcesCurrent() (*randr.GetScreenResourcesCurrentReply, error) {
	panic("unreachable")
}

func (noRandR) GetOutputInfo(randr.Output, xproto.Timestamp) (*randr.GetOutputInfoReply, error) {
	panic("unreachable")
}

func (noRandR) GetCrtcInfo(randr.Crtc, xproto.Timestamp) (*randr.GetCrtcInfoReply, error) {
	panic("unreachable")
}

func TestResolve_HeightsSumToTallness(t *testing.T) {
	pair := offset.Pair{Max: 200, Split: 37}

	layout := Resolve(noRandR{}, pair)

	assert.Equal(t, placement.Default(37), layout.Top)
	assert.Equal(t, placement.Default(163), layout.Bottom)
	assert.Equal(t, pair.Max, int(layout.Top.Height)+int(layout.Bottom.Height))
	assert.Equal(t, xwm.TopStrut(), layout.TopStrut)
	assert.Equal(t, xwm.BottomStrut(), layout.BottomStrut)
}

type fakeAtoms struct {
	d *fakeDisplay
}

func (a fakeAtoms) Reply() (xwm.Atoms, error) {
	a.d.record("atoms reply")
	if a.d.atomsErr != nil {
		return xwm.Atoms{}, a.d.atomsErr
	}
	return testAtoms, nil
}

// fakeDisplay records every request in order and hands out window ids
// starting at topWID.
type fakeDisplay struct {
	*fakeConn
	calls     []string
	next      xproto.Window
	cursorErr error
	createErr map[int]error
	atomsErr  error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{fakeConn: &fakeConn{}, next: topWID}
}

func (d *fakeDisplay) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDisplay) RandR() placement.RandR {
	d.record("randr")
	return noRandR{}
}

func (d *fakeDisplay) InternAtoms() AtomsReply {
	d.record("intern atoms")
	return fakeAtoms{d: d}
}

func (d *fakeDisplay) LoadCursor(name string) (xproto.Cursor, error) {
	d.record("cursor %s", name)
	if d.cursorErr != nil {
		return 0, d.cursorErr
	}
	return testCursor, nil
}

func (d *fakeDisplay) CreateSurface(rect placement.Rect, background uint32, cursor xproto.Cursor) (xwm.Window, error) {
	d.record("create %s background=%#x cursor=%d", rect, background, cursor)
	if err := d.createErr[len(d.calls)]; err != nil {
		return xwm.Window{}, err
	}
	wid := d.next
	d.next++
	return xwm.Window{WID: wid, X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height}, nil
}

func (d *fakeDisplay) MapSurface(wid xproto.Window) error {
	d.record("map %#x", wid)
	return nil
}

func (d *fakeDisplay) SetDock(atoms xwm.Atoms, wid xproto.Window) error {
	d.record("dock %#x type=%d", wid, atoms.WmWindowTypeDock)
	return nil
}

func (d *fakeDisplay) SetStrutPartial(atoms xwm.Atoms, wid xproto.Window, strut xwm.StrutPartial) error {
	d.record("strut %#x %v", wid, strut.Values())
	return nil
}

const testCursor xproto.Cursor = 9

var testAtoms = xwm.Atoms{WmWindowType: 301, WmWindowTypeDock: 302, WmStrutPartial: 303}

func testOptions() Options {
	return Options{
		Offset:     offset.Pair{Max: 200, Split: 37},
		Background: 0x123456,
		Cursor:     "left_ptr",
	}
}

func TestSetupDisplay_CreationSequence(t *testing.T) {
	d := newFakeDisplay()

	c, err := SetupDisplay(d, testOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"intern atoms",
		"randr",
		"cursor left_ptr",
		"create 500x37+50+50 background=0x123456 cursor=9",
		"create 500x163+50+50 background=0x123456 cursor=9",
		"map 0x200001",
		"map 0x200002",
		"atoms reply",
		"dock 0x200001 type=302",
		fmt.Sprintf("strut 0x200001 %v", xwm.TopStrut().Values()),
		"dock 0x200002 type=302",
		fmt.Sprintf("strut 0x200002 %v", xwm.BottomStrut().Values()),
	}, d.calls)

	assert.Equal(t, Surface{Edge: Top, WID: topWID, Rect: placement.Default(37)}, c.Surface(Top))
	assert.Equal(t, Surface{Edge: Bottom, WID: bottomWID, Rect: placement.Default(163)}, c.Surface(Bottom))
}

func TestSetupDisplay_CursorFailureInheritsParent(t *testing.T) {
	d := newFakeDisplay()
	d.cursorErr = errors.New("no cursor font")

	_, err := SetupDisplay(d, testOptions())
	require.NoError(t, err)

	assert.Contains(t, d.calls, "create 500x37+50+50 background=0x123456 cursor=0")
	assert.Contains(t, d.calls, "create 500x163+50+50 background=0x123456 cursor=0")
}

func TestSetupDisplay_CreateFailure(t *testing.T) {
	d := newFakeDisplay()
	errCreate := errors.New("bad alloc")
	// The bottom surface is the fifth request.
	d.createErr = map[int]error{5: errCreate}

	_, err := SetupDisplay(d, testOptions())

	assert.ErrorIs(t, err, errCreate)
	assert.ErrorContains(t, err, "bottom bar")
	assert.Len(t, d.calls, 5)
}

func TestSetupDisplay_AtomsFailureSkipsProperties(t *testing.T) {
	d := newFakeDisplay()
	errAtoms := errors.New("could not get atom")
	d.atomsErr = errAtoms

	_, err := SetupDisplay(d, testOptions())

	assert.ErrorIs(t, err, errAtoms)
	assert.Equal(t, "atoms reply", d.calls[len(d.calls)-1])
}
