package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed input")

// ParseError reports a line that could not be parsed. Line is 1-based; zero
// means the error is not tied to a single line.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.Err}
}

// Malformed builds a ParseError for line with a formatted message.
func Malformed(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Normalize converts CRLF line endings and strips leading and trailing blank
// space, so inputs pasted from a browser and files with a final newline parse
// the same.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimSpace(input)
}

// Lines splits normalized input into lines with surrounding spaces trimmed.
// Empty input yields no lines.
func Lines(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// Block is a run of non-blank lines. Start is the 1-based line number of its
// first line in the input.
type Block struct {
	Start int
	Lines []string
}

// Blocks groups lines separated by one or more blank lines.
func Blocks(input string) []Block {
	var (
		blocks []Block
		cur    *Block
	)
	for i, l := range Lines(input) {
		if l == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, Block{Start: i + 1})
			cur = &blocks[len(blocks)-1]
		}
		cur.Lines = append(cur.Lines, l)
	}
	return blocks
}

// Ints parses whitespace separated integers.
func Ints(fields string) ([]int64, error) {
	parts := strings.Fields(fields)
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		out = append(out, n)
	}
	return out, nil
}
