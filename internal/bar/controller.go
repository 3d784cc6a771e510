// Package bar owns the two bar surfaces and reacts to X notifications.
package bar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ItsNotGoodName/x-oledbar/internal/placement"
	"github.com/ItsNotGoodName/x-oledbar/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/thejerf/suture/v4"
)

var (
	ErrUnknownSurface = errors.New("unknown surface")
	ErrDisconnected   = errors.New("display connection closed")
)

type Surface struct {
	Edge      Edge
	WID       xproto.Window
	Rect      placement.Rect
	Exposures int
}

// Controller is the event loop state. It is only touched by the goroutine
// running Serve.
type Controller struct {
	conn     xwm.Conn
	surfaces [len(edges)]Surface
	lookup   map[xproto.Window]Edge

	// The receiver outlives a single Serve so a restart does not lose events.
	msgC      chan xwm.Msg
	pump      sync.Once
	pumpCtx   context.Context
	pumpClose context.CancelFunc
}

func NewController(conn xwm.Conn, top, bottom Surface) *Controller {
	top.Edge, bottom.Edge = Top, Bottom
	pumpCtx, pumpClose := context.WithCancel(context.Background())

	return &Controller{
		conn:     conn,
		surfaces: [len(edges)]Surface{top, bottom},
		lookup: map[xproto.Window]Edge{
			top.WID:    Top,
			bottom.WID: Bottom,
		},
		msgC:      make(chan xwm.Msg),
		pumpCtx:   pumpCtx,
		pumpClose: pumpClose,
	}
}

// Close stops the event receiver. It is still blocked until the connection
// yields its next event or closes.
func (c *Controller) Close() {
	c.pumpClose()
}

func (c *Controller) String() string {
	return fmt.Sprintf("bar.Controller(top=%d, bottom=%d)", c.surfaces[Top].WID, c.surfaces[Bottom].WID)
}

// Surface returns the current state of one bar.
func (c *Controller) Surface(edge Edge) Surface {
	return c.surfaces[edge]
}

// Serve handles notifications one at a time until the connection closes or
// ctx is done.
func (c *Controller) Serve(ctx context.Context) error {
	c.pump.Do(func() {
		go xwm.ReceiveEvents(c.pumpCtx, c.conn, c.msgC)
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-c.msgC:
			if !ok {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				slog.Debug("exit: display connection closed")
				return errors.Join(ErrDisconnected, suture.ErrTerminateSupervisorTree)
			}

			if err := c.Update(msg); err != nil {
				slog.Error("Failed to handle notification", "error", err)
			}
		}
	}
}

// Update applies a single notification.
func (c *Controller) Update(msg xwm.Msg) error {
	switch ev := msg.(type) {
	case xgb.Error:
		slog.Error("X11 error received", "sequence", fmt.Sprintf("%x", ev.SequenceId()), "error", ev)
		return nil
	case xproto.ExposeEvent:
		edge, err := c.edge(ev.Window)
		if err != nil {
			return fmt.Errorf("expose: %w", err)
		}

		c.redraw(edge)
		return nil
	case xproto.ConfigureNotifyEvent:
		edge, err := c.edge(ev.Window)
		if err != nil {
			return fmt.Errorf("configure notify: %w", err)
		}

		// The server is authoritative, the new geometry is never contested.
		c.surfaces[edge].Rect = placement.Rect{
			X:      ev.X,
			Y:      ev.Y,
			Width:  ev.Width,
			Height: ev.Height,
		}
		slog.Debug("ConfigureNotifyEvent", "edge", edge, "rect", c.surfaces[edge].Rect)
		return nil
	case xproto.ButtonPressEvent:
		slog.Debug("ButtonPressEvent", "detail", ev.Detail)
		return nil
	case xproto.ButtonReleaseEvent:
		slog.Debug("ButtonReleaseEvent", "detail", ev.Detail)
		return nil
	default:
		slog.Debug("unknown event", "event", ev)
		return nil
	}
}

func (c *Controller) edge(wid xproto.Window) (Edge, error) {
	edge, ok := c.lookup[wid]
	if !ok {
		return 0, fmt.Errorf("%w: window %d", ErrUnknownSurface, wid)
	}
	return edge, nil
}

// redraw only flushes, the server paints the background itself.
func (c *Controller) redraw(edge Edge) {
	c.surfaces[edge].Exposures++
	c.conn.Sync()
}
