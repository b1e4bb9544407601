// Package almanac solves day 5, "If You Give A Seed A Fertilizer": seeds are
// pushed through a chain of range translation tables and the lowest resulting
// location wins. Part two treats the seeds as ranges and remaps whole
// intervals instead of single values.
package almanac

type Solver struct{}

func (Solver) Day() int      { return 5 }
func (Solver) Title() string { return "If You Give A Seed A Fertilizer" }

func (Solver) PartOne(input string) (int64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	return a.Pipeline.Lowest(a.SeedValues())
}

func (Solver) PartTwo(input string) (int64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.Pipeline.Lowest(ivs)
}
