// Package collab declares the external collaborators the lateral
// planner drives each tick: the MPC solver, the lane-line fusion
// module and the vehicle kinematic model. All
// three are black boxes to the planner core; isolating them behind
// interfaces keeps any unsafe/cgo solver binding out of the control
// logic.
package collab

// KinematicState is the MPC's state vector: longitudinal distance,
// lateral offset, heading and steer angle.
type KinematicState struct {
	X, Y, Psi, Delta float64
}

// Solution is one MPC horizon. Delta has at least 2 samples, Rate at
// least 1.
type Solution struct {
	X, Y, Psi, Delta, Rate []float64
	Cost                   float64
}

// Solver is the MPC solver contract. Init is
// idempotent and resets all internal state; Run fills out with a
// fresh horizon for the given state and lane geometry. Run may
// return a Solution with NaNs or a very large Cost to signal
// infeasibility - the planner detects and recovers from both.
type Solver interface {
	Init(pathCost, laneCost, headingCost, rateCost float64)
	Run(state KinematicState, lPoly, rPoly, dPoly [4]float64, lProb, rProb, curvatureFactor, vEgoMpc, laneWidth float64) Solution
}

// LaneLineSource is the lane-line fusion collaborator.
// ParseModel refreshes the polynomials and probabilities from a fresh
// perception model message; UpdateDPoly fuses them with the driving
// policy path. LProb/RProb are read-write: the fader
// attenuates them in place before UpdateDPoly runs.
type LaneLineSource interface {
	ParseModel(model any)
	UpdateDPoly(vEgo float64)

	LPoly() [4]float64
	RPoly() [4]float64
	DPoly() [4]float64
	LaneWidth() float64

	LProb() float64
	RProb() float64
	SetLProb(float64)
	SetRProb(float64)

	LLaneChangeProb() float64
	RLaneChangeProb() float64
}

// VehicleModel is the kinematic-bicycle-model collaborator.
type VehicleModel interface {
	UpdateParams(stiffness, steerRatio float64)
	CurvatureFactor(vEgo float64) float64
	SR() float64
}
