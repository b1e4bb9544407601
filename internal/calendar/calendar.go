// Package calendar lists the solved days.
package calendar

import (
	"github.com/PieterScheffers/advent-of-code-2023/internal/almanac"
	"github.com/PieterScheffers/advent-of-code-2023/internal/boatrace"
	"github.com/PieterScheffers/advent-of-code-2023/internal/camelcards"
	"github.com/PieterScheffers/advent-of-code-2023/internal/cubes"
	"github.com/PieterScheffers/advent-of-code-2023/internal/puzzle"
	"github.com/PieterScheffers/advent-of-code-2023/internal/schematic"
	"github.com/PieterScheffers/advent-of-code-2023/internal/scratchcards"
	"github.com/PieterScheffers/advent-of-code-2023/internal/trebuchet"
	"github.com/PieterScheffers/advent-of-code-2023/internal/wasteland"
)

func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(
		trebuchet.Solver{},
		cubes.Solver{},
		schematic.Solver{},
		scratchcards.Solver{},
		almanac.Solver{},
		boatrace.Solver{},
		camelcards.Solver{},
		wasteland.Solver{},
	)
}
