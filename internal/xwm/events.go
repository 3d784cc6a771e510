package xwm

import (
	"context"
	"log/slog"
)

// ReceiveEvents forwards events and errors from conn until the connection
// closes or ctx is done. msgC is closed on return.
func ReceiveEvents(ctx context.Context, conn Conn, msgC chan<- Msg) {
	defer close(msgC)
	slog := slog.With("func", "xwm.ReceiveEvents")

	for {
		// WaitForEvent either returns an event or an error and never both.
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			slog.Debug("exit: no event or error")
			return
		}

		var msg Msg = ev
		if xerr != nil {
			msg = xerr
		}

		select {
		case <-ctx.Done():
			return
		case msgC <- msg:
		}
	}
}
