// Package planner implements the lateral path planner: the per-tick
// control loop that turns perception and vehicle-state messages into
// a desired steering angle, a lane-change intent, and a published
// pathPlan message.
//
// The planner core does no I/O and starts no goroutines:
// Update is called once per tick by an external runner (cmd/plannerd)
// and always returns, even when its collaborators report infeasible
// or invalid data.
package planner

import (
	"math"
	"time"

	"github.com/openadas/latplanner/internal/collab"
	"github.com/openadas/latplanner/internal/message"
)

// Option configures a Planner at construction time.
type Option func(*Planner)

// WithDebugMPC enables the optional liveMpc publication each tick,
// exposing the solver's raw trajectory for offline debugging.
func WithDebugMPC() Option {
	return func(p *Planner) { p.debugMPC = true }
}

// Planner owns the lane-change FSM, the MPC driver, and the authority
// limiter for a single vehicle. All of its state is exclusively owned
// by the instance; nothing else reads cur_state or the MPC solution
// buffers directly.
type Planner struct {
	state plannerState

	mpc     *mpcDriver
	lane    collab.LaneLineSource
	vehicle collab.VehicleModel

	steerActuatorDelay float64
	debugMPC           bool
}

// New constructs a Planner. laneChangeEnabled and laneChangeAutoDelay
// are read once here and cached for the planner's lifetime - changes
// to these parameters take effect on the next construction, not
// mid-run.
func New(
	solver collab.Solver,
	lane collab.LaneLineSource,
	vehicle collab.VehicleModel,
	cost MPCCostLat,
	steerRateCost float64,
	steerActuatorDelay float64,
	laneChangeEnabled bool,
	laneChangeAutoDelay float64,
	opts ...Option,
) *Planner {
	p := &Planner{
		state: plannerState{
			steerRateCost: steerRateCost,
			fsm:           newFSMState(laneChangeEnabled, laneChangeAutoDelay),
		},
		lane:               lane,
		vehicle:            vehicle,
		steerActuatorDelay: steerActuatorDelay,
	}
	p.mpc = newMPCDriver(solver, cost, steerRateCost)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Update runs one tick of the planner: lane-line parse, FSM update, fade attenuation, d-poly update,
// delay compensation, MPC, authority limit, and finally publish.
// liveMpc is non-nil only when WithDebugMPC was set.
func (p *Planner) Update(
	now time.Time,
	car message.CarState,
	controls message.ControlsState,
	params message.LiveParameters,
	model message.Model,
	alive message.Alive,
) (message.PathPlan, *message.LiveMpc) {
	st := &p.state

	angleOffset := params.AngleOffset
	st.angleSteersDesPrev = st.angleSteersDesMpc

	stiffness := math.Max(params.StiffnessFactor, paramFloor)
	steerRatio := math.Max(params.SteerRatio, paramFloor)
	p.vehicle.UpdateParams(stiffness, steerRatio)
	curvatureFactor := p.vehicle.CurvatureFactor(car.VEgo)

	p.lane.ParseModel(model.Raw)

	desire := st.fsm.update(laneChangeInputs{
		controlsActive:  controls.Active,
		vEgo:            car.VEgo,
		leftBlinker:     car.LeftBlinker,
		rightBlinker:    car.RightBlinker,
		steeringPressed: car.SteeringPressed,
		steeringTorque:  car.SteeringTorque,
		leftBlindspot:   car.LeftBlindspot,
		rightBlindspot:  car.RightBlindspot,
		laneChangeProb:  p.lane.LLaneChangeProb() + p.lane.RLaneChangeProb(),
	})

	// Turn off lane-line influence during an active lane change. This
	// mutates the lane-line collaborator's in-memory probabilities
	// ahead of UpdateDPoly and publish; they are overwritten next tick
	// by ParseModel. Fragile but intentional coupling.
	if desire == message.DesireLaneChangeLeft || desire == message.DesireLaneChangeRight {
		p.lane.SetLProb(p.lane.LProb() * st.fsm.llProb)
		p.lane.SetRProb(p.lane.RProb() * st.fsm.llProb)
	}
	p.lane.UpdateDPoly(car.VEgo)

	sr := p.vehicle.SR()
	st.curState = calcStateAfterDelay(st.curState, car.VEgo, car.SteeringAngle-angleOffset, curvatureFactor, sr, p.steerActuatorDelay)

	res := p.mpc.run(st, p.lane, curvatureFactor, car.VEgo, car.SteeringAngle, angleOffset, sr, controls.Active)
	angleSteersDesMpcDeg := p.mpc.handleResult(st, res, sr, car.SteeringAngle, angleOffset, now)

	vKph := car.VEgo * 3.61 // preserved verbatim - not 3.6
	angleSteersDesMpcDeg = applyAuthorityLimit(angleSteersDesMpcDeg, car.SteeringAngle, car.SteeringTorque, vKph, car.SteeringPressed)

	st.angleSteersDesMpc = angleSteersDesMpcDeg

	mpcSolutionValid := st.solutionInvalidCnt < solutionInvalidLimit

	plan := buildPathPlan(
		p.lane,
		angleSteersDesMpcDeg, res.rateDesired, angleOffset,
		mpcSolutionValid, params.Valid,
		desire, st.fsm.state, st.fsm.direction,
		alive,
	)

	if !p.debugMPC {
		return plan, nil
	}
	live := buildLiveMpc(res.solution)
	return plan, &live
}
