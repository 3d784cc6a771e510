// Package offset draws the random split between the top and bottom bar.
package offset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultTallness is the combined height of both bars when none is given.
const DefaultTallness = 200

// MaxTallness is the largest combined height an X window dimension can hold.
const MaxTallness = 1<<16 - 1

var ErrInvalidTallness = errors.New("invalid tallness")

// Pair is drawn once at startup and never changes.
type Pair struct {
	Max   int
	Split int
}

// Top is the height of the top bar.
func (p Pair) Top() int {
	return p.Split
}

// Bottom is the height of the bottom bar.
func (p Pair) Bottom() int {
	return p.Max - p.Split
}

func (p Pair) String() string {
	return fmt.Sprintf("offset.Pair(max=%d, top=%d, bottom=%d)", p.Max, p.Top(), p.Bottom())
}

// NewSource returns a random source seeded from the wall clock.
func NewSource() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32))
}

// Draw picks a split uniformly from [0, max). A max of zero yields a zero split.
func Draw(max int, r *rand.Rand) (Pair, error) {
	if max < 0 || max > MaxTallness {
		return Pair{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidTallness, max, MaxTallness)
	}

	if max == 0 {
		return Pair{}, nil
	}

	return Pair{
		Max:   max,
		Split: r.IntN(max),
	}, nil
}
