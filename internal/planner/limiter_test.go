package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitCtrlClampsIntoWindow(t *testing.T) {
	cases := []struct {
		value, limit, offset float64
	}{
		{value: 0, limit: 5, offset: 0},
		{value: 100, limit: 5, offset: 0},
		{value: -100, limit: 5, offset: 0},
		{value: 12, limit: 1, offset: 10},
		{value: -40, limit: 1, offset: 10},
	}
	for _, c := range cases {
		got := limitCtrl(c.value, c.limit, c.offset)
		assert.GreaterOrEqual(t, got, c.offset-c.limit)
		assert.LessOrEqual(t, got, c.offset+c.limit)
	}
}

func TestLimitCtrlPassesThroughInsideWindow(t *testing.T) {
	assert.Equal(t, 2.0, limitCtrl(2, 5, 0))
}
