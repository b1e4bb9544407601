// Package cubes solves day 2, "Cube Conundrum".
package cubes

import (
	"strconv"
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

// Set counts cubes per color. Colors other than red, green and blue are
// ignored.
type Set struct {
	Red, Green, Blue int64
}

// Bag is the load the elf claims for part one.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

func (s Set) Fits(in Set) bool {
	return s.Red <= in.Red && s.Green <= in.Green && s.Blue <= in.Blue
}

func (s Set) Power() int64 {
	return s.Red * s.Green * s.Blue
}

type Game struct {
	ID    int64
	Grabs []Set
}

// Minimum is the smallest bag every grab of the game fits in.
func (g Game) Minimum() Set {
	var m Set
	for _, s := range g.Grabs {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

func (g Game) PossibleWith(bag Set) bool {
	for _, s := range g.Grabs {
		if !s.Fits(bag) {
			return false
		}
	}
	return true
}

// ParseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line int, text string) (Game, error) {
	head, body, ok := strings.Cut(text, ":")
	if !ok {
		return Game{}, puzzle.Malformed(line, "missing ':' in %q", text)
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, puzzle.Malformed(line, "expected \"Game <id>\", got %q", head)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Game{}, &puzzle.ParseError{Line: line, Msg: "bad game id", Err: err}
	}

	g := Game{ID: id}
	for _, grab := range strings.Split(body, ";") {
		var s Set
		for _, cube := range strings.Split(grab, ",") {
			fields := strings.Fields(cube)
			if len(fields) != 2 {
				return Game{}, puzzle.Malformed(line, "expected \"<count> <color>\", got %q", strings.TrimSpace(cube))
			}
			n, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return Game{}, &puzzle.ParseError{Line: line, Msg: "bad cube count", Err: err}
			}
			switch fields[1] {
			case "red":
				s.Red += n
			case "green":
				s.Green += n
			case "blue":
				s.Blue += n
			}
		}
		g.Grabs = append(g.Grabs, s)
	}
	return g, nil
}

func parse(input string) ([]Game, error) {
	lines := puzzle.Lines(input)
	games := make([]Game, 0, len(lines))
	for i, l := range lines {
		g, err := ParseGame(i+1, l)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

type Solver struct{}

func (Solver) Day() int      { return 2 }
func (Solver) Title() string { return "Cube Conundrum" }

func (Solver) PartOne(input string) (int64, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		if g.PossibleWith(Bag) {
			total += g.ID
		}
	}
	return total, nil
}

func (Solver) PartTwo(input string) (int64, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		total += g.Minimum().Power()
	}
	return total, nil
}
