// Package boatrace solves day 6, "Wait For It".
package boatrace

import (
	"math"
	"strconv"
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

// Race lasts Time milliseconds; Distance is the record to beat.
type Race struct {
	Time     int64
	Distance int64
}

// Beats reports whether holding the button for hold ms sets a new record.
func (r Race) Beats(hold int64) bool {
	return hold*(r.Time-hold) > r.Distance
}

// Ways counts the hold times that beat the record. The travelled distance is
// symmetric around Time/2, so only the shortest winning hold is searched for;
// the float estimate is corrected with exact integer checks.
func (r Race) Ways() int64 {
	disc := r.Time*r.Time - 4*r.Distance
	if disc < 0 {
		return 0
	}
	lo := int64(math.Floor((float64(r.Time) - math.Sqrt(float64(disc))) / 2))
	lo = max(lo, 0)
	for lo > 0 && r.Beats(lo-1) {
		lo--
	}
	for lo <= r.Time/2 && !r.Beats(lo) {
		lo++
	}
	if lo > r.Time/2 {
		return 0
	}
	return r.Time - 2*lo + 1
}

func field(line int, text, label string) (string, error) {
	rest, ok := strings.CutPrefix(text, label+":")
	if !ok {
		return "", puzzle.Malformed(line, "expected %q line, got %q", label, text)
	}
	return rest, nil
}

func readLines(input string) (times, distances string, err error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return "", "", puzzle.Malformed(0, "expected a Time and a Distance line, got %d lines", len(lines))
	}
	if times, err = field(1, lines[0], "Time"); err != nil {
		return "", "", err
	}
	if distances, err = field(2, lines[1], "Distance"); err != nil {
		return "", "", err
	}
	return times, distances, nil
}

// ParseRaces reads the columns of the Time and Distance lines as separate
// races.
func ParseRaces(input string) ([]Race, error) {
	timeText, distText, err := readLines(input)
	if err != nil {
		return nil, err
	}
	times, err := puzzle.Ints(timeText)
	if err != nil {
		return nil, &puzzle.ParseError{Line: 1, Msg: "bad time", Err: err}
	}
	dists, err := puzzle.Ints(distText)
	if err != nil {
		return nil, &puzzle.ParseError{Line: 2, Msg: "bad distance", Err: err}
	}
	if len(times) != len(dists) {
		return nil, puzzle.Malformed(2, "%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}
	return races, nil
}

// ParseKerned reads both lines as one number each, ignoring the spaces.
func ParseKerned(input string) (Race, error) {
	timeText, distText, err := readLines(input)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.ParseInt(strings.Join(strings.Fields(timeText), ""), 10, 64)
	if err != nil {
		return Race{}, &puzzle.ParseError{Line: 1, Msg: "bad time", Err: err}
	}
	d, err := strconv.ParseInt(strings.Join(strings.Fields(distText), ""), 10, 64)
	if err != nil {
		return Race{}, &puzzle.ParseError{Line: 2, Msg: "bad distance", Err: err}
	}
	return Race{Time: t, Distance: d}, nil
}

type Solver struct{}

func (Solver) Day() int      { return 6 }
func (Solver) Title() string { return "Wait For It" }

func (Solver) PartOne(input string) (int64, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

func (Solver) PartTwo(input string) (int64, error) {
	r, err := ParseKerned(input)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}
