// Package scratchcards solves day 4, "Scratchcards".
package scratchcards

import (
	"slices"
	"strconv"
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

type Card struct {
	ID      int64
	Winning []int64
	Have    []int64
}

// Matches counts the numbers on the card that are also winning numbers.
func (c Card) Matches() int {
	n := 0
	for _, h := range c.Have {
		if slices.Contains(c.Winning, h) {
			n++
		}
	}
	return n
}

// Points doubles per match after the first: 0, 1, 2, 4, 8, ...
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard reads "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(line int, text string) (Card, error) {
	head, body, ok := strings.Cut(text, ":")
	if !ok {
		return Card{}, puzzle.Malformed(line, "missing ':' in %q", text)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, puzzle.Malformed(line, "expected \"Card <id>\", got %q", head)
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Card{}, &puzzle.ParseError{Line: line, Msg: "bad card id", Err: err}
	}

	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, puzzle.Malformed(line, "missing '|' between winning and drawn numbers")
	}
	c := Card{ID: id}
	if c.Winning, err = puzzle.Ints(winText); err != nil {
		return Card{}, &puzzle.ParseError{Line: line, Msg: "bad winning number", Err: err}
	}
	if c.Have, err = puzzle.Ints(haveText); err != nil {
		return Card{}, &puzzle.ParseError{Line: line, Msg: "bad drawn number", Err: err}
	}
	return c, nil
}

func parse(input string) ([]Card, error) {
	lines := puzzle.Lines(input)
	cards := make([]Card, 0, len(lines))
	for i, l := range lines {
		c, err := ParseCard(i+1, l)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Cascade returns how many copies of each card end up in the pile when every
// card with n matches wins one copy of each of the next n cards. Wins past the
// last card are dropped.
func Cascade(cards []Card) []int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

type Solver struct{}

func (Solver) Day() int      { return 4 }
func (Solver) Title() string { return "Scratchcards" }

func (Solver) PartOne(input string) (int64, error) {
	cards, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		total += c.Points()
	}
	return total, nil
}

func (Solver) PartTwo(input string) (int64, error) {
	cards, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range Cascade(cards) {
		total += n
	}
	return total, nil
}
