package offset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_SplitWithinRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, max := range []int{0, 1, 2, 7, DefaultTallness, 1080, MaxTallness} {
		for i := 0; i < 200; i++ {
			pair, err := Draw(max, r)
			require.NoError(t, err)

			assert.Equal(t, max, pair.Max)
			assert.GreaterOrEqual(t, pair.Split, 0)
			assert.LessOrEqual(t, pair.Split, max)
			assert.Equal(t, max, pair.Top()+pair.Bottom())
		}
	}
}

func TestDraw_ZeroTallness(t *testing.T) {
	pair, err := Draw(0, NewSource())
	require.NoError(t, err)

	assert.Equal(t, 0, pair.Top())
	assert.Equal(t, 0, pair.Bottom())
}

func TestDraw_RejectsOutOfRange(t *testing.T) {
	_, err := Draw(-1, NewSource())
	assert.ErrorIs(t, err, ErrInvalidTallness)

	_, err = Draw(MaxTallness+1, NewSource())
	assert.ErrorIs(t, err, ErrInvalidTallness)
}

func TestPair_TopAndBottom(t *testing.T) {
	pair := Pair{Max: 200, Split: 37}

	assert.Equal(t, 37, pair.Top())
	assert.Equal(t, 163, pair.Bottom())
}
