package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 4: driver pulling right against a left MPC
// request gets clamped to the 5deg fight window.
func TestApplyAuthorityLimitDriverFight(t *testing.T) {
	got := applyAuthorityLimit(10, 0, -450, 50, true)
	assert.Equal(t, 5.0, got)
}

// Scenario 5: at 5 kph with no driver input, the MPC
// request is clamped to the 1deg low-speed window.
func TestApplyAuthorityLimitLowSpeedClamp(t *testing.T) {
	got := applyAuthorityLimit(10, 0, 0, 5, false)
	assert.Equal(t, 1.0, got)
}

func TestApplyAuthorityLimitNoFightPassesThrough(t *testing.T) {
	// Driver pulling right (torque<0) while MPC also wants right
	// (deltaSteer<0): not a fight, no clamp.
	got := applyAuthorityLimit(-2, 0, -450, 50, true)
	assert.Equal(t, -2.0, got)
}

func TestApplyAuthorityLimitHighSpeedPassesThrough(t *testing.T) {
	got := applyAuthorityLimit(10, 0, 0, 100, false)
	assert.Equal(t, 10.0, got)
}
