package bar

import "fmt"

// Edge identifies one of the two bars.
type Edge int

const (
	Top Edge = iota
	Bottom
)

var edges = [...]Edge{Top, Bottom}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}
