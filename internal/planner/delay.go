package planner

import (
	"math"

	"github.com/openadas/latplanner/internal/collab"
)

// calcStateAfterDelay advances the kinematic state by the vehicle's
// actuator delay. y and delta are left untouched: the
// solver uses delta as the initial actuator position and assumes a
// zero initial lateral offset.
func calcStateAfterDelay(state collab.KinematicState, vEgo, angleSteersDeg, curvatureFactor, steerRatio, delay float64) collab.KinematicState {
	angleRad := math.Pi * angleSteersDeg / 180
	state.X = vEgo * delay
	state.Psi = vEgo * curvatureFactor * angleRad / steerRatio * delay
	return state
}
