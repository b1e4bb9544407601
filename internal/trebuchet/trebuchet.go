// Package trebuchet solves day 1, "Trebuchet?!": every line hides a two digit
// calibration value made of its first and last digit.
package trebuchet

import (
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type Solver struct{}

func (Solver) Day() int      { return 1 }
func (Solver) Title() string { return "Trebuchet?!" }

func (Solver) PartOne(input string) (int64, error) {
	return sum(input, false), nil
}

func (Solver) PartTwo(input string) (int64, error) {
	return sum(input, true), nil
}

func sum(input string, words bool) int64 {
	var total int64
	for _, line := range puzzle.Lines(input) {
		total += Calibration(line, words)
	}
	return total
}

// Calibration returns first*10+last for the digits in line. With words set,
// spelled digits count too and may overlap ("eightwo" holds 8 and 2). A line
// without digits is worth 0.
func Calibration(line string, words bool) int64 {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return int64(first*10 + last)
}

func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
