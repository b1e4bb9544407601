package almanac

import "fmt"

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  int64
	Length int64
}

func (iv Interval) End() int64 {
	return iv.Start + iv.Length
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End())
}

// Rule translates values in [Source, Source+Length) by Destination-Source.
type Rule struct {
	Destination int64
	Source      int64
	Length      int64
}

func (r Rule) SourceEnd() int64 {
	return r.Source + r.Length
}

func (r Rule) Offset() int64 {
	return r.Destination - r.Source
}

// Covers reports whether v falls in the rule's source range.
func (r Rule) Covers(v int64) bool {
	return v >= r.Source && v < r.SourceEnd()
}

// Split cuts iv against r. The overlap with the rule's source range is
// returned translated in mapped; the parts of iv before and after the rule
// are returned untouched in unmapped, prefix first. Empty pieces are never
// returned, so a slice equal to the rule range yields one mapped interval and
// no remainder.
func Split(r Rule, iv Interval) (mapped, unmapped []Interval) {
	lo := max(iv.Start, r.Source)
	hi := min(iv.End(), r.SourceEnd())
	if lo >= hi {
		if iv.Length > 0 {
			unmapped = append(unmapped, iv)
		}
		return mapped, unmapped
	}

	if iv.Start < lo {
		unmapped = append(unmapped, Interval{Start: iv.Start, Length: lo - iv.Start})
	}
	mapped = append(mapped, Interval{Start: lo + r.Offset(), Length: hi - lo})
	if hi < iv.End() {
		unmapped = append(unmapped, Interval{Start: hi, Length: iv.End() - hi})
	}
	return mapped, unmapped
}

// TotalLength sums the lengths of ivs.
func TotalLength(ivs []Interval) int64 {
	var n int64
	for _, iv := range ivs {
		n += iv.Length
	}
	return n
}
