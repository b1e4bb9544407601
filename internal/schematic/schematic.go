// Package schematic solves day 3, "Gear Ratios": numbers in a character grid
// count as part numbers when any of their cells touches a symbol, diagonals
// included.
package schematic

import (
	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

type Point struct {
	X, Y int
}

// Number is a run of digits on one row, covering columns [X, X+Width).
type Number struct {
	Value int64
	X, Y  int
	Width int
}

type Schematic struct {
	rows [][]byte
}

func Parse(input string) *Schematic {
	lines := puzzle.Lines(input)
	s := &Schematic{rows: make([][]byte, len(lines))}
	for i, l := range lines {
		s.rows[i] = []byte(l)
	}
	return s
}

// At returns the cell at p; cells outside the grid read as '.'.
func (s *Schematic) At(p Point) byte {
	if p.Y < 0 || p.Y >= len(s.rows) || p.X < 0 || p.X >= len(s.rows[p.Y]) {
		return '.'
	}
	return s.rows[p.Y][p.X]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSymbol reports anything that is neither a digit nor '.'.
func IsSymbol(c byte) bool {
	return !isDigit(c) && c != '.'
}

// Numbers lists every number, row by row, left to right.
func (s *Schematic) Numbers() []Number {
	var out []Number
	for y, row := range s.rows {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			n := Number{X: x, Y: y}
			for x < len(row) && isDigit(row[x]) {
				n.Value = n.Value*10 + int64(row[x]-'0')
				x++
			}
			n.Width = x - n.X
			out = append(out, n)
		}
	}
	return out
}

// Neighbours returns the cells around n that lie inside the grid, in reading
// order.
func (s *Schematic) Neighbours(n Number) []Point {
	var out []Point
	for y := n.Y - 1; y <= n.Y+1; y++ {
		for x := n.X - 1; x <= n.X+n.Width; x++ {
			if y == n.Y && x >= n.X && x < n.X+n.Width {
				continue
			}
			if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
				continue
			}
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

func (s *Schematic) IsPart(n Number) bool {
	for _, p := range s.Neighbours(n) {
		if IsSymbol(s.At(p)) {
			return true
		}
	}
	return false
}

// Gears maps every '*' to the numbers touching it. A number touching the
// same star with several cells is listed once.
func (s *Schematic) Gears() map[Point][]Number {
	gears := make(map[Point][]Number)
	for _, n := range s.Numbers() {
		for _, p := range s.Neighbours(n) {
			if s.At(p) == '*' {
				gears[p] = append(gears[p], n)
			}
		}
	}
	return gears
}

type Solver struct{}

func (Solver) Day() int      { return 3 }
func (Solver) Title() string { return "Gear Ratios" }

func (Solver) PartOne(input string) (int64, error) {
	s := Parse(input)
	var total int64
	for _, n := range s.Numbers() {
		if s.IsPart(n) {
			total += n.Value
		}
	}
	return total, nil
}

// PartTwo sums the gear ratios of stars touching exactly two numbers.
func (Solver) PartTwo(input string) (int64, error) {
	var total int64
	for _, nums := range Parse(input).Gears() {
		if len(nums) == 2 {
			total += nums[0].Value * nums[1].Value
		}
	}
	return total, nil
}
