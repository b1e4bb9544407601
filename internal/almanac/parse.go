package almanac

import (
	"errors"
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

var ErrNoSeeds = errors.New("almanac lists no seeds")

// Almanac is a parsed day 5 input: the seed list and the stage chain in file
// order.
type Almanac struct {
	Seeds    []int64
	Pipeline *Pipeline
}

// Parse reads
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	...
//
// Any malformed line fails the whole parse.
func Parse(input string) (*Almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, puzzle.Malformed(0, "empty almanac")
	}

	header := blocks[0]
	if len(header.Lines) != 1 {
		return nil, puzzle.Malformed(header.Start+1, "expected a blank line after the seeds header")
	}
	seeds, err := parseSeeds(header.Start, header.Lines[0])
	if err != nil {
		return nil, err
	}

	a := &Almanac{Seeds: seeds, Pipeline: NewPipeline()}
	for _, b := range blocks[1:] {
		s, err := parseStage(b)
		if err != nil {
			return nil, err
		}
		if err := a.Pipeline.Add(s); err != nil {
			return nil, &puzzle.ParseError{Line: b.Start, Msg: "duplicate stage", Err: err}
		}
	}
	return a, nil
}

func parseSeeds(line int, text string) ([]int64, error) {
	rest, ok := strings.CutPrefix(text, "seeds:")
	if !ok {
		return nil, puzzle.Malformed(line, "expected %q header, got %q", "seeds:", text)
	}
	seeds, err := puzzle.Ints(rest)
	if err != nil {
		return nil, &puzzle.ParseError{Line: line, Msg: "bad seed", Err: err}
	}
	return seeds, nil
}

func parseStage(b puzzle.Block) (Stage, error) {
	name, ok := strings.CutSuffix(b.Lines[0], " map:")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.ContainsAny(name, " \t") {
		return Stage{}, puzzle.Malformed(b.Start, "expected %q, got %q", "<name> map:", b.Lines[0])
	}

	s := Stage{Name: name, Rules: make([]Rule, 0, len(b.Lines)-1)}
	for i, text := range b.Lines[1:] {
		line := b.Start + 1 + i
		fields, err := puzzle.Ints(text)
		if err != nil {
			return Stage{}, &puzzle.ParseError{Line: line, Msg: "bad rule in " + name, Err: err}
		}
		if len(fields) != 3 {
			return Stage{}, puzzle.Malformed(line, "rule in %s needs 3 numbers, got %d", name, len(fields))
		}
		s.Rules = append(s.Rules, Rule{Destination: fields[0], Source: fields[1], Length: fields[2]})
	}
	return s, nil
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, puzzle.Malformed(1, "seed ranges need start/length pairs, got %d numbers", len(a.Seeds))
	}
	ivs := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, Interval{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return ivs, nil
}

// SeedValues reads every seed as a one-wide interval.
func (a *Almanac) SeedValues() []Interval {
	ivs := make([]Interval, 0, len(a.Seeds))
	for _, s := range a.Seeds {
		ivs = append(ivs, Interval{Start: s, Length: 1})
	}
	return ivs
}
