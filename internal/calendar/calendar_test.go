package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := Registry()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, r.Days())
	for _, s := range r.Solvers() {
		assert.NotEmpty(t, s.Title(), "day %d", s.Day())
	}
}
