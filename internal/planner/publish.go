package planner

import (
	"github.com/openadas/latplanner/internal/collab"
	"github.com/openadas/latplanner/internal/message"
)

// buildPathPlan assembles the per-tick pathPlan message.
func buildPathPlan(
	lane collab.LaneLineSource,
	angleSteersDesMpcDeg, rateDesired, angleOffset float64,
	mpcSolutionValid, paramsValid bool,
	desire message.Desire,
	state LaneChangeState,
	direction LaneChangeDirection,
	alive message.Alive,
) message.PathPlan {
	return message.PathPlan{
		LaneWidth: lane.LaneWidth(),
		DPoly:     lane.DPoly(),
		LPoly:     lane.LPoly(),
		LProb:     lane.LProb(),
		RPoly:     lane.RPoly(),
		RProb:     lane.RProb(),

		AngleSteers: angleSteersDesMpcDeg,
		RateSteers:  rateDesired,
		AngleOffset: angleOffset,

		MpcSolutionValid: mpcSolutionValid,
		ParamsValid:      paramsValid,

		Desire:              desire,
		LaneChangeState:     int(state),
		LaneChangeDirection: int(direction),

		Valid: alive.AllValid(),
	}
}

// buildLiveMpc assembles the optional debug solver-trajectory message,
// emitted only when debug logging is enabled.
func buildLiveMpc(sol collab.Solution) message.LiveMpc {
	return message.LiveMpc{
		X:     sol.X,
		Y:     sol.Y,
		Psi:   sol.Psi,
		Delta: sol.Delta,
		Cost:  sol.Cost,
	}
}
