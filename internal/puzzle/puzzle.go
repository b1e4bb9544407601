// Package puzzle defines the contract every daily solver implements and the
// registry the command uses to find them by day.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownDay = errors.New("no solver registered for day")

// Solver answers both parts of one day's puzzle from its raw input text.
type Solver interface {
	Day() int
	Title() string
	PartOne(input string) (int64, error)
	PartTwo(input string) (int64, error)
}

type Registry struct {
	byDay map[int]Solver
}

// NewRegistry indexes solvers by day. Registering a day twice panics.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{byDay: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if _, dup := r.byDay[s.Day()]; dup {
			panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day()))
		}
		r.byDay[s.Day()] = s
	}
	return r
}

func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Solvers returns the registered solvers ordered by day.
func (r *Registry) Solvers() []Solver {
	days := r.Days()
	out := make([]Solver, 0, len(days))
	for _, d := range days {
		out = append(out, r.byDay[d])
	}
	return out
}
