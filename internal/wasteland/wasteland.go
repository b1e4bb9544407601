// Package wasteland solves day 8, "Haunted Wasteland": follow a repeating
// list of left/right turns through a network of named nodes.
package wasteland

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
)

var (
	ErrUnknownNode = errors.New("unknown node")
	ErrUnreachable = errors.New("target not reachable")
)

type Fork struct {
	Left, Right string
}

type Map struct {
	Directions string
	Nodes      map[string]Fork
	// order keeps the nodes in file order so ghost starts are deterministic.
	order []string
}

// Parse reads the turn line, a blank line and "AAA = (BBB, CCC)" node lines.
func Parse(input string) (*Map, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 || len(blocks[0].Lines) != 1 {
		return nil, puzzle.Malformed(0, "expected a direction line, a blank line and the node list")
	}

	m := &Map{Directions: blocks[0].Lines[0], Nodes: make(map[string]Fork)}
	if strings.Trim(m.Directions, "LR") != "" {
		return nil, puzzle.Malformed(1, "directions may only contain L and R, got %q", m.Directions)
	}

	for i, text := range blocks[1].Lines {
		line := blocks[1].Start + i
		name, fork, err := parseNode(line, text)
		if err != nil {
			return nil, err
		}
		if _, dup := m.Nodes[name]; dup {
			return nil, puzzle.Malformed(line, "node %s declared twice", name)
		}
		m.Nodes[name] = fork
		m.order = append(m.order, name)
	}

	for _, name := range m.order {
		f := m.Nodes[name]
		for _, next := range []string{f.Left, f.Right} {
			if _, ok := m.Nodes[next]; !ok {
				return nil, fmt.Errorf("%w %s referenced by %s", ErrUnknownNode, next, name)
			}
		}
	}
	return m, nil
}

func parseNode(line int, text string) (string, Fork, error) {
	name, rest, ok := strings.Cut(text, "=")
	if !ok {
		return "", Fork{}, puzzle.Malformed(line, "missing '=' in %q", text)
	}
	rest = strings.TrimSpace(rest)
	inner, ok := strings.CutPrefix(rest, "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return "", Fork{}, puzzle.Malformed(line, "expected \"(<left>, <right>)\", got %q", rest)
	}
	left, right, ok := strings.Cut(inner, ",")
	name, left, right = strings.TrimSpace(name), strings.TrimSpace(left), strings.TrimSpace(right)
	if !ok || name == "" || left == "" || right == "" {
		return "", Fork{}, puzzle.Malformed(line, "expected \"<node> = (<left>, <right>)\", got %q", text)
	}
	return name, Fork{Left: left, Right: right}, nil
}

// Walk counts the steps from start until done reports true. A walk that has
// not finished after len(Directions)*len(Nodes) steps is in a loop that never
// reaches the target.
func (m *Map) Walk(start string, done func(node string) bool) (int64, error) {
	if _, ok := m.Nodes[start]; !ok {
		return 0, fmt.Errorf("%w %s", ErrUnknownNode, start)
	}
	limit := int64(len(m.Directions)) * int64(len(m.Nodes))
	node := start
	for steps := int64(0); steps <= limit; steps++ {
		if done(node) {
			return steps, nil
		}
		f := m.Nodes[node]
		if m.Directions[steps%int64(len(m.Directions))] == 'L' {
			node = f.Left
		} else {
			node = f.Right
		}
	}
	return 0, fmt.Errorf("%w from %s", ErrUnreachable, start)
}

// Ghosts returns every node ending in 'A', in file order.
func (m *Map) Ghosts() []string {
	var out []string
	for _, name := range m.order {
		if strings.HasSuffix(name, "A") {
			out = append(out, name)
		}
	}
	return out
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

type Solver struct{}

func (Solver) Day() int      { return 8 }
func (Solver) Title() string { return "Haunted Wasteland" }

func (Solver) PartOne(input string) (int64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Walk("AAA", func(n string) bool { return n == "ZZZ" })
}

// PartTwo assumes, as the puzzle inputs guarantee, that each ghost's first
// arrival on a Z node starts a cycle of that same length, so all ghosts meet
// after the least common multiple of their first arrivals.
func (Solver) PartTwo(input string) (int64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	ghosts := m.Ghosts()
	if len(ghosts) == 0 {
		return 0, fmt.Errorf("%w: no node ends in A", ErrUnknownNode)
	}
	total := int64(1)
	for _, g := range ghosts {
		steps, err := m.Walk(g, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		total = lcm(total, steps)
	}
	return total, nil
}
