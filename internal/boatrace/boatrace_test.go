package boatrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

const example = `
Time:      7  15   30
Distance:  9  40  200
`

func bruteForce(r Race) int64 {
	var n int64
	for h := int64(0); h <= r.Time; h++ {
		if r.Beats(h) {
			n++
		}
	}
	return n
}

func TestParseRaces(t *testing.T) {
	races, err := ParseRaces(example)
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, races)

	r, err := ParseKerned(example)
	require.NoError(t, err)
	assert.Equal(t, Race{Time: 71530, Distance: 940200}, r)
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{
		"Time: 7 15",
		"Tim: 7\nDistance: 9",
		"Time: 7\nDist: 9",
		"Time: 7 x\nDistance: 9 1",
		"Time: 7 15\nDistance: 9",
	} {
		_, err := ParseRaces(input)
		assert.ErrorIs(t, err, puzzle.ErrMalformed, input)
	}
}

func TestWays(t *testing.T) {
	assert.Equal(t, int64(4), Race{7, 9}.Ways())
	assert.Equal(t, int64(8), Race{15, 40}.Ways())
	assert.Equal(t, int64(9), Race{30, 200}.Ways())
	assert.Equal(t, int64(0), Race{4, 4}.Ways())
	assert.Equal(t, int64(0), Race{3, 100}.Ways())

	for tm := int64(0); tm < 40; tm++ {
		for d := int64(0); d < 120; d += 7 {
			r := Race{Time: tm, Distance: d}
			require.Equal(t, bruteForce(r), r.Ways(), "race %+v", r)
		}
	}
}

func TestSolver(t *testing.T) {
	one, err := Solver{}.PartOne(example)
	require.NoError(t, err)
	assert.Equal(t, int64(288), one)

	two, err := Solver{}.PartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, int64(71503), two)
}
