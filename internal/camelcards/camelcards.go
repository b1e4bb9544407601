// Package camelcards solves day 7, "Camel Cards": hands are ranked by type
// and then card by card, and every hand wins its bid times its rank.
package camelcards

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

type Kind int

const (
	HighCard Kind = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = map[Kind]string{
	HighCard:     "high card",
	OnePair:      "one pair",
	TwoPair:      "two pair",
	ThreeOfAKind: "three of a kind",
	FullHouse:    "full house",
	FourOfAKind:  "four of a kind",
	FiveOfAKind:  "five of a kind",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Joker is the card value J takes when jokers are wild; it ranks below 2.
const Joker = 1

// Hand holds card values 2..14 (A), or Joker for a wild J.
type Hand struct {
	Cards [5]int
	Bid   int64
}

func cardValue(c byte, jokers bool) (int, bool) {
	switch c {
	case 'A':
		return 14, true
	case 'K':
		return 13, true
	case 'Q':
		return 12, true
	case 'J':
		if jokers {
			return Joker, true
		}
		return 11, true
	case 'T':
		return 10, true
	}
	if c >= '2' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

// ParseHand reads "32T3K 765".
func ParseHand(line int, text string, jokers bool) (Hand, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Hand{}, puzzle.Malformed(line, "expected \"<cards> <bid>\", got %q", text)
	}
	if len(fields[0]) != 5 {
		return Hand{}, puzzle.Malformed(line, "hand %q must have 5 cards", fields[0])
	}

	var h Hand
	for i := 0; i < 5; i++ {
		v, ok := cardValue(fields[0][i], jokers)
		if !ok {
			return Hand{}, puzzle.Malformed(line, "unknown card %q", fields[0][i])
		}
		h.Cards[i] = v
	}
	bid, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Hand{}, &puzzle.ParseError{Line: line, Msg: "bad bid", Err: err}
	}
	h.Bid = bid
	return h, nil
}

// Kind classifies the hand. Jokers join whichever group is already largest.
func (h Hand) Kind() Kind {
	counts := make(map[int]int, 5)
	jokers := 0
	for _, c := range h.Cards {
		if c == Joker {
			jokers++
			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = append(groups, 0)
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by kind, then by the first differing card.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	return slices.Compare(a.Cards[:], b.Cards[:])
}

// Winnings ranks hands weakest first and sums bid*rank.
func Winnings(hands []Hand) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Compare)
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}

func parse(input string, jokers bool) ([]Hand, error) {
	lines := puzzle.Lines(input)
	hands := make([]Hand, 0, len(lines))
	for i, l := range lines {
		h, err := ParseHand(i+1, l, jokers)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}

type Solver struct{}

func (Solver) Day() int      { return 7 }
func (Solver) Title() string { return "Camel Cards" }

func (Solver) PartOne(input string) (int64, error) {
	hands, err := parse(input, false)
	if err != nil {
		return 0, err
	}
	return Winnings(hands), nil
}

func (Solver) PartTwo(input string) (int64, error) {
	hands, err := parse(input, true)
	if err != nil {
		return 0, err
	}
	return Winnings(hands), nil
}
