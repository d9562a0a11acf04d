package planner

import (
	"time"

	"github.com/openadas/latplanner/internal/collab"
)

// Physical/tuning constants. Kept as package-level
// constants rather than configuration so the numbers that define the
// control behavior can't drift silently between deployments.
const (
	// DTMdl is the planner's tick period: the model runs at 20 Hz.
	DTMdl = 0.05

	// LaneChangeSpeedMin is 60 km/h expressed in m/s.
	LaneChangeSpeedMin = 60.0 / 3.6

	// LaneChangeTimeMax is the hard cutoff that forces the FSM back to
	// Off regardless of blinker/torque state.
	LaneChangeTimeMax = 10.0

	// vEgoMpcFloor keeps the MPC away from the numerical roughness it
	// shows at crawling speed.
	vEgoMpcFloor = 5.0

	// solutionInvalidLimit is the number of consecutive bad solutions
	// that flips mpcSolutionValid to false.
	solutionInvalidLimit = 3

	// solutionCostCeiling is the cost above which a solution is treated
	// as not converged, even without NaNs.
	solutionCostCeiling = 20000.0

	// nanWarnInterval rate-limits the solver-NaN log line.
	nanWarnInterval = 5 * time.Second

	// paramFloor is the minimum stiffness/steer-ratio the vehicle model
	// is ever updated with.
	paramFloor = 0.1
)

// MPCCostLat are the immutable MPC cost weights handed to the solver
// on every (re)init.
type MPCCostLat struct {
	Path    float64
	Lane    float64
	Heading float64
}

// LaneChangeState is the lane-change FSM's state, a tagged sum type
// with an explicit transition table (the fsmState.update method in
// lanechange.go) rather than a scattered if/elif chain.
type LaneChangeState int

const (
	LaneChangeOff LaneChangeState = iota
	LaneChangePre
	LaneChangeStarting
	LaneChangeFinishing
	LaneChangeDone
)

func (s LaneChangeState) String() string {
	switch s {
	case LaneChangeOff:
		return "off"
	case LaneChangePre:
		return "preLaneChange"
	case LaneChangeStarting:
		return "starting"
	case LaneChangeFinishing:
		return "finishing"
	case LaneChangeDone:
		return "done"
	default:
		return "unknown"
	}
}

// LaneChangeDirection is the latched blinker-derived intent.
type LaneChangeDirection int

const (
	DirectionNone LaneChangeDirection = iota
	DirectionLeft
	DirectionRight
)

func (d LaneChangeDirection) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// fsmState is the lane-change FSM's full persistent state, separated from Planner so lanechange.go can be tested in
// isolation from the MPC/authority pipeline.
type fsmState struct {
	state     LaneChangeState
	direction LaneChangeDirection

	runTimer  float64
	waitTimer float64
	llProb    float64

	prevOneBlinker bool

	enabled   bool
	autoDelay float64 // seconds; 0 disables auto-start
}

func newFSMState(enabled bool, autoDelay float64) fsmState {
	return fsmState{
		state:     LaneChangeOff,
		direction: DirectionNone,
		llProb:    1.0,
		enabled:   enabled,
		autoDelay: autoDelay,
	}
}

// plannerState is the per-vehicle persistent state carried across
// ticks: immutable tuning fields set at construction, mutable fields
// updated once per tick.
type plannerState struct {
	steerRateCost float64

	curState collab.KinematicState

	angleSteersDesMpc  float64
	angleSteersDesPrev float64

	solutionInvalidCnt int
	lastCloudlogT      time.Time

	fsm fsmState
}
