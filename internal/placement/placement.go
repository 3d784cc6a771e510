// Package placement decides where a bar goes on the primary output.
package placement

import (
	"fmt"
	"log/slog"

	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// Geometry used when the primary output cannot be discovered.
const (
	DefaultX = 50
	DefaultY = 50
)

// Width of every bar. It is not derived from the output width.
const Width = 500

type Rect struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Default is the rectangle used when discovery fails at any step.
func Default(height uint16) Rect {
	return Rect{
		X:      DefaultX,
		Y:      DefaultY,
		Width:  Width,
		Height: height,
	}
}

// RandR is the subset of the RandR extension used to find the primary output.
type RandR interface {
	GetOutputPrimary() (*randr.GetOutputPrimaryReply, error)
	GetScreenResourcesCurrent() (*randr.GetScreenResourcesCurrentReply, error)
	GetOutputInfo(output randr.Output, timestamp xproto.Timestamp) (*randr.GetOutputInfoReply, error)
	GetCrtcInfo(crtc randr.Crtc, timestamp xproto.Timestamp) (*randr.GetCrtcInfoReply, error)
}

// Resolve returns the rectangle for a bar of the given height. Only the
// origin is taken from the primary output; any failure yields Default.
func Resolve(q RandR, height uint16) Rect {
	slog := slog.With("func", "placement.Resolve", "height", height)

	x, y, ok := primaryOrigin(q, slog)
	if !ok {
		return Default(height)
	}

	return Rect{
		X:      x,
		Y:      y,
		Width:  Width,
		Height: height,
	}
}

// primaryOrigin walks primary output -> screen resources -> output -> CRTC.
// Replies are only referenced within this call.
func primaryOrigin(q RandR, logger *slog.Logger) (int16, int16, bool) {
	primary, err := q.GetOutputPrimary()
	if err != nil || primary == nil || primary.Output == 0 {
		logger.Debug("Could not determine the primary output", "error", err)
		return 0, 0, false
	}

	res, err := q.GetScreenResourcesCurrent()
	if err != nil || res == nil {
		logger.Debug("Could not get screen resources", "error", err)
		return 0, 0, false
	}

	output, err := q.GetOutputInfo(primary.Output, res.ConfigTimestamp)
	if err != nil || output == nil || output.Crtc == 0 {
		logger.Debug("Primary output has no CRTC", "output", primary.Output, "error", err)
		return 0, 0, false
	}

	crtc, err := q.GetCrtcInfo(output.Crtc, res.ConfigTimestamp)
	if err != nil || crtc == nil {
		logger.Debug("Could not get CRTC info", "crtc", output.Crtc, "error", err)
		return 0, 0, false
	}

	logger.Debug("Found primary output", "x", crtc.X, "y", crtc.Y, "w", crtc.Width, "h", crtc.Height)
	if crtc.Width == 0 || crtc.Height == 0 {
		logger.Debug("Primary output is not active, ignoring it")
		return 0, 0, false
	}

	return crtc.X, crtc.Y, true
}
