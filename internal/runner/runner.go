// Package runner drives solvers: it reads puzzle input, runs the requested
// parts as a result chain and checks answers against a manifest.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/chain"
)

// Part selects which halves of a puzzle to solve.
type Part int

const (
	Both Part = iota
	One
	Two
)

func ParsePart(n int) (Part, error) {
	switch n {
	case 0:
		return Both, nil
	case 1:
		return One, nil
	case 2:
		return Two, nil
	}
	return Both, fmt.Errorf("part must be 0 (both), 1 or 2, got %d", n)
}

func (p Part) wantsOne() bool { return p != Two }
func (p Part) wantsTwo() bool { return p != One }

func (p Part) String() string {
	switch p {
	case One:
		return "one"
	case Two:
		return "two"
	}
	return "both"
}

type Answer struct {
	Day        int
	Title      string
	PartOne    int64
	PartTwo    int64
	HasPartOne bool
	HasPartTwo bool
	Elapsed    time.Duration
	RunID      uuid.UUID
}

type Runner struct {
	registry *puzzle.Registry
	logger   *zap.Logger
}

func New(registry *puzzle.Registry, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, logger: logger}
}

// attempt carries the normalized input next to the answer being built.
type attempt struct {
	input  string
	answer Answer
}

// Solve runs the selected parts of day against input. A parse or lookup
// error fails the result; a done ctx cancels it.
func (r *Runner) Solve(ctx context.Context, day int, input string, part Part) rop.Result[Answer] {
	solver, err := r.registry.Lookup(day)
	if err != nil {
		return rop.Fail[Answer](err)
	}
	start := time.Now()

	seed := rop.Success(attempt{
		input:  puzzle.Normalize(input),
		answer: Answer{Day: day, Title: solver.Title()},
	})
	run := seed.Id()

	c := chain.Start(ctx, seed).Validate(func(_ context.Context, a attempt) (bool, string) {
		return a.input != "", fmt.Sprintf("day %d: input is empty", day)
	})

	c = chain.ThenTry(c, func(ctx context.Context, a attempt) (attempt, error) {
		if !part.wantsOne() {
			return a, nil
		}
		if err := ctx.Err(); err != nil {
			return a, err
		}
		v, err := solver.PartOne(a.input)
		if err != nil {
			return a, fmt.Errorf("day %d part one: %w", day, err)
		}
		a.answer.PartOne, a.answer.HasPartOne = v, true
		return a, nil
	})

	c = chain.ThenTry(c, func(ctx context.Context, a attempt) (attempt, error) {
		if !part.wantsTwo() {
			return a, nil
		}
		if err := ctx.Err(); err != nil {
			return a, err
		}
		v, err := solver.PartTwo(a.input)
		if err != nil {
			return a, fmt.Errorf("day %d part two: %w", day, err)
		}
		a.answer.PartTwo, a.answer.HasPartTwo = v, true
		return a, nil
	})

	res := chain.Map(c, func(_ context.Context, a attempt) Answer {
		a.answer.Elapsed = time.Since(start)
		a.answer.RunID = run
		return a.answer
	}).Ensure(func(_ context.Context, a Answer) {
		r.logger.Debug("solved",
			zap.Int("day", a.Day),
			zap.Stringer("run", run),
			zap.Duration("elapsed", a.Elapsed))
	}).Result()

	if !res.IsSuccess() {
		r.logger.Warn("solve failed",
			zap.Int("day", day),
			zap.Stringer("run", run),
			zap.Bool("cancelled", res.IsCancel()),
			zap.Error(res.Err()))
	}
	return res
}

// ReadInput reads the puzzle input at path; "-" reads stdin.
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}
