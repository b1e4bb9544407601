package almanac

import (
	"errors"
	"fmt"
)

var ErrUnknownStage = errors.New("unknown stage")

// Stage is one named translation table, e.g. "seed-to-soil".
type Stage struct {
	Name  string
	Rules []Rule
}

// Translate maps a single value with the first rule covering it. Values no
// rule covers map to themselves.
func (s Stage) Translate(v int64) int64 {
	for _, r := range s.Rules {
		if r.Covers(v) {
			return v + r.Offset()
		}
	}
	return v
}

// Apply pushes ivs through the stage. Each rule, in declared order, claims
// the pieces of the still pending intervals it covers; claimed pieces are done
// and are not offered to later rules. Whatever no rule claims passes through
// unchanged. The total length of the output equals that of the input.
func (s Stage) Apply(ivs []Interval) []Interval {
	done := make([]Interval, 0, len(ivs))
	pending := append([]Interval(nil), ivs...)

	for _, r := range s.Rules {
		if len(pending) == 0 {
			break
		}
		next := make([]Interval, 0, len(pending))
		for _, iv := range pending {
			mapped, unmapped := Split(r, iv)
			done = append(done, mapped...)
			next = append(next, unmapped...)
		}
		pending = next
	}

	return append(done, pending...)
}

// Pipeline is the ordered chain of stages found in an almanac.
type Pipeline struct {
	order  []string
	stages map[string]Stage
}

func NewPipeline() *Pipeline {
	return &Pipeline{stages: make(map[string]Stage)}
}

// Add appends a stage to the end of the chain. Stage names must be unique.
func (p *Pipeline) Add(s Stage) error {
	if _, dup := p.stages[s.Name]; dup {
		return fmt.Errorf("stage %q declared twice", s.Name)
	}
	p.order = append(p.order, s.Name)
	p.stages[s.Name] = s
	return nil
}

// Names returns the stage names in traversal order.
func (p *Pipeline) Names() []string {
	return append([]string(nil), p.order...)
}

func (p *Pipeline) Stage(name string) (Stage, error) {
	s, ok := p.stages[name]
	if !ok {
		return Stage{}, fmt.Errorf("%w %q", ErrUnknownStage, name)
	}
	return s, nil
}

// Trace returns v followed by its value after every stage, in order.
func (p *Pipeline) Trace(v int64) ([]int64, error) {
	out := make([]int64, 0, len(p.order)+1)
	out = append(out, v)
	for _, name := range p.order {
		s, err := p.Stage(name)
		if err != nil {
			return nil, err
		}
		v = s.Translate(v)
		out = append(out, v)
	}
	return out, nil
}

// Translate returns the value v ends up as after the last stage.
func (p *Pipeline) Translate(v int64) (int64, error) {
	trace, err := p.Trace(v)
	if err != nil {
		return 0, err
	}
	return trace[len(trace)-1], nil
}

// Remap pushes ivs through every stage in order, each stage's output feeding
// the next.
func (p *Pipeline) Remap(ivs []Interval) ([]Interval, error) {
	for _, name := range p.order {
		s, err := p.Stage(name)
		if err != nil {
			return nil, err
		}
		ivs = s.Apply(ivs)
	}
	return ivs, nil
}

// Lowest returns the smallest start among ivs after the full pipeline.
func (p *Pipeline) Lowest(ivs []Interval) (int64, error) {
	out, err := p.Remap(ivs)
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := out[0].Start
	for _, iv := range out[1:] {
		lowest = min(lowest, iv.Start)
	}
	return lowest, nil
}
