package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PieterScheffers/advent-of-code-2023/internal/runner"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&app{logger: zap.NewNop()})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "day  1  Trebuchet?!", lines[0])
	assert.Equal(t, "day  5  If You Give A Seed A Fertilizer", lines[4])
}

func TestRun(t *testing.T) {
	out, _, err := execute(t, "", "run", "5", "--input", "testdata/day05.txt")
	require.NoError(t, err)
	assert.Equal(t, "part one: 35\npart two: 46\n", out)

	out, _, err = execute(t, "", "run", "6", "--input", "testdata/day06.txt", "--part", "2")
	require.NoError(t, err)
	assert.Equal(t, "part two: 71503\n", out)
}

func TestRun_Stdin(t *testing.T) {
	out, _, err := execute(t, "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n",
		"run", "7", "-i", "-", "-p", "1")
	require.NoError(t, err)
	assert.Equal(t, "part one: 6440\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "", "run", "five")
	assert.ErrorContains(t, err, "day must be a number")

	_, _, err = execute(t, "", "run", "5", "--part", "3")
	assert.Error(t, err)

	_, _, err = execute(t, "", "run", "5", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "x", "run", "20", "-i", "-")
	assert.ErrorContains(t, err, "no solver registered for day 20")
}

func TestCheck_Examples(t *testing.T) {
	out, _, err := execute(t, "", "check", "--manifest", "testdata/puzzles.yaml", "--workers", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	for i, l := range lines {
		assert.True(t, strings.HasPrefix(l, "ok    day "), "line %d: %s", i, l)
	}
}

func TestCheck_Failures(t *testing.T) {
	dir := t.TempDir()
	input, err := os.ReadFile("testdata/day06.txt")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "races.txt"), input, 0o644))

	manifest := filepath.Join(dir, "puzzles.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
puzzles:
  - day: 6
    input: races.txt
    part_one: 289
`), 0o644))

	out, _, err := execute(t, "", "check", "-m", manifest)
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "FAIL  day  6  wrong answer: part one: want 289, got 288")
}

func TestCheck_InvalidManifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "puzzles.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
puzzles:
  - day: 0
    input: a.txt
  - day: 3
`), 0o644))

	_, errOut, err := execute(t, "", "check", "-m", manifest)
	assert.ErrorIs(t, err, runner.ErrInvalidManifest)
	assert.Contains(t, errOut, "day 0 is outside 1..25")
	assert.Contains(t, errOut, "puzzles[1]: input is required")
}
