package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpFlatExtrapolates(t *testing.T) {
	xp := []float64{40, 60, 70, 80}
	fp := []float64{0.5, 1.0, 1.5, 2.0}

	assert.Equal(t, 0.5, interp(10, xp, fp))
	assert.Equal(t, 2.0, interp(200, xp, fp))
}

func TestInterpInterpolatesLinearly(t *testing.T) {
	xp := []float64{40, 60, 70, 80}
	fp := []float64{0.5, 1.0, 1.5, 2.0}

	assert.InDelta(t, 0.75, interp(50, xp, fp), 1e-9)
	assert.Equal(t, 1.5, interp(70, xp, fp))
}
