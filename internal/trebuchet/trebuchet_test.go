package trebuchet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibration(t *testing.T) {
	assert.Equal(t, int64(12), Calibration("1abc2", false))
	assert.Equal(t, int64(38), Calibration("pqr3stu8vwx", false))
	assert.Equal(t, int64(15), Calibration("a1b2c3d4e5f", false))
	assert.Equal(t, int64(77), Calibration("treb7uchet", false))
	assert.Equal(t, int64(0), Calibration("nodigits", false))

	assert.Equal(t, int64(29), Calibration("two1nine", true))
	assert.Equal(t, int64(83), Calibration("eightwothree", true))
	assert.Equal(t, int64(82), Calibration("eightwo", true))
	assert.Equal(t, int64(76), Calibration("7pqrstsixteen", true))
	assert.Equal(t, int64(0), Calibration("eightwo", false))
}

func TestSolver(t *testing.T) {
	one, err := Solver{}.PartOne(`
1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`)
	require.NoError(t, err)
	assert.Equal(t, int64(142), one)

	two, err := Solver{}.PartTwo(`
two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`)
	require.NoError(t, err)
	assert.Equal(t, int64(281), two)
}
