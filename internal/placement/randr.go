package placement

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// Conn queries RandR over a live X connection.
type Conn struct {
	conn    *xgb.Conn
	root    xproto.Window
	initErr error
}

// NewConn initializes the RandR extension. When that fails every query
// returns the init error, so Resolve falls back to Default.
func NewConn(conn *xgb.Conn, root xproto.Window) Conn {
	var initErr error
	if err := randr.Init(conn); err != nil {
		initErr = fmt.Errorf("randr init failed: %w", err)
	}

	return Conn{
		conn:    conn,
		root:    root,
		initErr: initErr,
	}
}

func (c Conn) GetOutputPrimary() (*randr.GetOutputPrimaryReply, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}
	return randr.GetOutputPrimary(c.conn, c.root).Reply()
}

func (c Conn) GetScreenResourcesCurrent() (*randr.GetScreenResourcesCurrentReply, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}
	return randr.GetScreenResourcesCurrent(c.conn, c.root).Reply()
}

func (c Conn) GetOutputInfo(output randr.Output, timestamp xproto.Timestamp) (*randr.GetOutputInfoReply, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}
	return randr.GetOutputInfo(c.conn, output, timestamp).Reply()
}

func (c Conn) GetCrtcInfo(crtc randr.Crtc, timestamp xproto.Timestamp) (*randr.GetCrtcInfoReply, error) {
	if c.initErr != nil {
		return nil, c.initErr
	}
	return randr.GetCrtcInfo(c.conn, crtc, timestamp).Reply()
}
