package runner

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/core"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/lite"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop/mass"
)

var ErrWrongAnswer = errors.New("wrong answer")

// EntryError ties a failed solve back to its manifest entry.
type EntryError struct {
	Entry Entry
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("day %d: %v", e.Entry.Day, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Verdict is the outcome of checking one manifest entry.
type Verdict struct {
	Entry  Entry
	Answer Answer
	Err    error
}

func (v Verdict) Day() int { return v.Entry.Day }

func (v Verdict) OK() bool { return v.Err == nil }

// Check solves every manifest entry on up to workers parallel lines and
// compares the answers with the expected ones. Verdicts come back ordered
// by day; entries left unsolved because ctx ended carry ctx's error.
func (r *Runner) Check(ctx context.Context, m *Manifest, workers int) []Verdict {
	ctx = core.WithWorkerOptions(ctx, workers)

	verdicts := core.FromChanMany(ctx,
		lite.Finally(ctx,
			lite.Turnout(ctx,
				core.ToChanManyResults(ctx, m.Puzzles),
				lite.Try(r.checkEntry),
				core.GetWorkerMaxCount(ctx, 1)),
			mass.FinallyHandlers[Verdict, Verdict]{
				OnSuccess: func(_ context.Context, v Verdict) Verdict { return v },
				OnError:   failedVerdict,
				OnCancel:  failedVerdict,
			}))

	seen := make(map[int]bool, len(verdicts))
	for _, v := range verdicts {
		seen[v.Day()] = true
	}
	for _, e := range m.Puzzles {
		if seen[e.Day] {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		verdicts = append(verdicts, Verdict{Entry: e, Err: err})
	}

	slices.SortFunc(verdicts, func(a, b Verdict) int { return a.Day() - b.Day() })

	failed := 0
	for _, v := range verdicts {
		if !v.OK() {
			failed++
		}
	}
	r.logger.Info("check finished",
		zap.Int("entries", len(verdicts)),
		zap.Int("failed", failed),
		zap.Int("workers", core.GetWorkerMaxCount(ctx, 1)))
	return verdicts
}

// checkEntry returns a successful Verdict only when every expected answer
// matched; anything else comes back as an *EntryError.
func (r *Runner) checkEntry(ctx context.Context, e Entry) (Verdict, error) {
	input, err := ReadInput(e.Input, nil)
	if err != nil {
		return Verdict{}, &EntryError{Entry: e, Err: err}
	}

	res := r.Solve(ctx, e.Day, input, e.Part())
	if !res.IsSuccess() {
		return Verdict{}, &EntryError{Entry: e, Err: res.Err()}
	}

	a := res.Result()
	var errs []error
	if e.PartOne != nil && a.PartOne != *e.PartOne {
		errs = append(errs, fmt.Errorf("%w: part one: want %d, got %d", ErrWrongAnswer, *e.PartOne, a.PartOne))
	}
	if e.PartTwo != nil && a.PartTwo != *e.PartTwo {
		errs = append(errs, fmt.Errorf("%w: part two: want %d, got %d", ErrWrongAnswer, *e.PartTwo, a.PartTwo))
	}
	return Verdict{Entry: e, Answer: a, Err: errors.Join(errs...)}, nil
}

func failedVerdict(_ context.Context, err error) Verdict {
	var ee *EntryError
	if errors.As(err, &ee) {
		return Verdict{Entry: ee.Entry, Err: ee.Err}
	}
	return Verdict{Err: err}
}
