package xwm

import (
	"github.com/jezek/xgb"
)

// Msg is either an xgb.Event or an xgb.Error read from the connection.
type Msg interface{}

// Conn is the part of *xgb.Conn the event loop needs.
type Conn interface {
	// WaitForEvent blocks until an event or error arrives. Both are nil
	// when the connection is closed.
	WaitForEvent() (xgb.Event, xgb.Error)
	// Sync forces a round trip so every pending request reaches the server.
	Sync()
}

var _ Conn = (*xgb.Conn)(nil)
