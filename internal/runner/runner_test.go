package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/PieterScheffers/advent-of-code-2023/internal/calendar"
	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBroken = errors.New("broken")

// countingSolver sums the numbers on each line; part two fails on demand.
type countingSolver struct {
	calls *int
	fail  bool
}

func (s countingSolver) Day() int      { return 3 }
func (s countingSolver) Title() string { return "Counting" }

func (s countingSolver) PartOne(input string) (int64, error) {
	*s.calls++
	return int64(len(puzzle.Lines(input))), nil
}

func (s countingSolver) PartTwo(input string) (int64, error) {
	*s.calls++
	if s.fail {
		return 0, errBroken
	}
	return int64(len(input)), nil
}

func newRunner(solvers ...puzzle.Solver) *Runner {
	return New(puzzle.NewRegistry(solvers...), zap.NewNop())
}

const seeds = `
seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestSolve_Almanac(t *testing.T) {
	r := New(calendar.Registry(), nil)

	res := r.Solve(context.Background(), 5, seeds, Both)
	require.True(t, res.IsSuccess(), "%v", res.Err())

	a := res.Result()
	assert.Equal(t, 5, a.Day)
	assert.Equal(t, "If You Give A Seed A Fertilizer", a.Title)
	assert.True(t, a.HasPartOne)
	assert.True(t, a.HasPartTwo)
	assert.Equal(t, int64(35), a.PartOne)
	assert.Equal(t, int64(46), a.PartTwo)
	assert.NotEqual(t, uuid.Nil, a.RunID)
}

func TestSolve_PartSelection(t *testing.T) {
	calls := 0
	r := newRunner(countingSolver{calls: &calls})

	res := r.Solve(context.Background(), 3, "a\nb\r\nc\n", One)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(3), res.Result().PartOne)
	assert.False(t, res.Result().HasPartTwo)

	res = r.Solve(context.Background(), 3, "abc", Two)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 2, calls)
	assert.False(t, res.Result().HasPartOne)
	assert.Equal(t, int64(3), res.Result().PartTwo)
}

func TestSolve_Failures(t *testing.T) {
	calls := 0
	r := newRunner(countingSolver{calls: &calls, fail: true})

	res := r.Solve(context.Background(), 4, "x", Both)
	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), puzzle.ErrUnknownDay)

	res = r.Solve(context.Background(), 3, " \n\n ", Both)
	assert.True(t, res.IsFailure())
	assert.Zero(t, calls)

	res = r.Solve(context.Background(), 3, "x", Both)
	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), errBroken)
	assert.Contains(t, res.Err().Error(), "day 3 part two")
	assert.Equal(t, 2, calls)
}

func TestSolve_CancelledContext(t *testing.T) {
	calls := 0
	r := newRunner(countingSolver{calls: &calls})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.Solve(ctx, 3, "x", Both)
	assert.True(t, res.IsCancel())
	assert.ErrorIs(t, res.Err(), context.Canceled)
	assert.Zero(t, calls)
}

func TestParsePart(t *testing.T) {
	for n, want := range map[int]Part{0: Both, 1: One, 2: Two} {
		p, err := ParsePart(n)
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}
	_, err := ParsePart(3)
	assert.Error(t, err)
	assert.Equal(t, "two", Two.String())
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput("-", strings.NewReader("1 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", got)

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))
	got, err = ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = ReadInput(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
