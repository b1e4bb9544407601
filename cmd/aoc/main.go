// Command aoc runs the Advent of Code 2023 solvers and checks their answers.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/PieterScheffers/advent-of-code-2023/internal/calendar"
	"github.com/PieterScheffers/advent-of-code-2023/internal/runner"
	"github.com/PieterScheffers/advent-of-code-2023/pkg/rop"
)

var errCheckFailed = errors.New("check failed")

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2023 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newListCmd(), newRunCmd(a), newCheckCmd(a))
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range calendar.Registry().Solvers() {
				fmt.Fprintf(cmd.OutOrStdout(), "day %2d  %s\n", s.Day(), s.Title())
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var (
		input string
		part  int
	)
	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve one day's puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number, got %q", args[0])
			}
			p, err := runner.ParsePart(part)
			if err != nil {
				return err
			}
			text, err := runner.ReadInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			res := runner.New(calendar.Registry(), a.logger).Solve(cmd.Context(), day, text, p)
			if !res.IsSuccess() {
				return res.Err()
			}

			answer := res.Result()
			out := cmd.OutOrStdout()
			if answer.HasPartOne {
				fmt.Fprintf(out, "part one: %d\n", answer.PartOne)
			}
			if answer.HasPartTwo {
				fmt.Fprintf(out, "part two: %d\n", answer.PartTwo)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "input.txt", "puzzle input file, - for stdin")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "part to solve: 1, 2 or 0 for both")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		manifest string
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Solve every puzzle in a manifest and compare the answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := runner.LoadManifest(manifest)
			if err != nil {
				for _, e := range rop.GetErrors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
				}
				return fmt.Errorf("loading %s: %w", manifest, runner.ErrInvalidManifest)
			}

			verdicts := runner.New(calendar.Registry(), a.logger).Check(cmd.Context(), m, workers)

			out := cmd.OutOrStdout()
			failed := 0
			for _, v := range verdicts {
				if v.OK() {
					fmt.Fprintf(out, "ok    day %2d  %s\n", v.Day(), v.Answer.Elapsed)
					continue
				}
				failed++
				fmt.Fprintf(out, "FAIL  day %2d  %v\n", v.Day(), v.Err)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d puzzles", errCheckFailed, failed, len(verdicts))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifest, "manifest", "m", "puzzles.yaml", "answers manifest")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "puzzles solved in parallel")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
