package planner

import (
	"math"

	"github.com/openadas/latplanner/internal/collab"
)

// fakeSolver is a deterministic collab.Solver stand-in for tests: the
// real MPC solver is an external collaborator this
// module never implements. It reports whatever horizon the test
// queues up next, defaulting to "track the current state with zero
// rate" so tests that don't care about the MPC path still get a
// sane, non-NaN solution.
type fakeSolver struct {
	initCalls int
	runCalls  int

	nextSolution collab.Solution
	nextHasValue bool
}

func (s *fakeSolver) Init(pathCost, laneCost, headingCost, rateCost float64) {
	s.initCalls++
}

func (s *fakeSolver) Run(state collab.KinematicState, lPoly, rPoly, dPoly [4]float64, lProb, rProb, curvatureFactor, vEgoMpc, laneWidth float64) collab.Solution {
	s.runCalls++
	if s.nextHasValue {
		s.nextHasValue = false
		return s.nextSolution
	}
	return collab.Solution{
		X:     []float64{0, vEgoMpc * DTMdl},
		Y:     []float64{0, 0},
		Psi:   []float64{state.Psi, state.Psi},
		Delta: []float64{state.Delta, state.Delta},
		Rate:  []float64{0},
		Cost:  0,
	}
}

// queue arranges for the next Run call to return sol.
func (s *fakeSolver) queue(sol collab.Solution) {
	s.nextSolution = sol
	s.nextHasValue = true
}

// queueNaN arranges for the next Run call to report an infeasible,
// NaN-contaminated solution.
func (s *fakeSolver) queueNaN() {
	s.queue(collab.Solution{
		X:     []float64{0, 0},
		Y:     []float64{0, 0},
		Psi:   []float64{0, 0},
		Delta: []float64{math.NaN(), math.NaN()},
		Rate:  []float64{math.NaN()},
		Cost:  math.NaN(),
	})
}

// queueHighCost arranges for the next Run call to report a
// numerically clean but non-converged (high-cost) solution.
func (s *fakeSolver) queueHighCost(cost float64) {
	s.queue(collab.Solution{
		X:     []float64{0, 0},
		Y:     []float64{0, 0},
		Psi:   []float64{0, 0},
		Delta: []float64{0, 0},
		Rate:  []float64{0},
		Cost:  cost,
	})
}

// fakeLane is a deterministic collab.LaneLineSource stand-in.
type fakeLane struct {
	laneWidth                        float64
	lPoly, rPoly, dPoly              [4]float64
	lProb, rProb                     float64
	lLaneChangeProb, rLaneChangeProb float64

	parseModelCalls  int
	updateDPolyCalls int
}

func newFakeLane() *fakeLane {
	return &fakeLane{laneWidth: 3.7, lProb: 1, rProb: 1}
}

func (l *fakeLane) ParseModel(model any)     { l.parseModelCalls++ }
func (l *fakeLane) UpdateDPoly(vEgo float64) { l.updateDPolyCalls++ }

func (l *fakeLane) LPoly() [4]float64  { return l.lPoly }
func (l *fakeLane) RPoly() [4]float64  { return l.rPoly }
func (l *fakeLane) DPoly() [4]float64  { return l.dPoly }
func (l *fakeLane) LaneWidth() float64 { return l.laneWidth }

func (l *fakeLane) LProb() float64     { return l.lProb }
func (l *fakeLane) RProb() float64     { return l.rProb }
func (l *fakeLane) SetLProb(p float64) { l.lProb = p }
func (l *fakeLane) SetRProb(p float64) { l.rProb = p }

func (l *fakeLane) LLaneChangeProb() float64 { return l.lLaneChangeProb }
func (l *fakeLane) RLaneChangeProb() float64 { return l.rLaneChangeProb }

// fakeVehicle is a deterministic collab.VehicleModel stand-in: a
// fixed steer ratio and a curvature factor proportional to v_ego^2,
// close enough to the bicycle model's shape for pipeline tests that
// don't assert on its exact numeric output.
type fakeVehicle struct {
	sr float64

	updateParamsCalls int
	lastStiffness     float64
	lastSteerRatio    float64
}

func newFakeVehicle(sr float64) *fakeVehicle {
	return &fakeVehicle{sr: sr}
}

func (v *fakeVehicle) UpdateParams(stiffness, steerRatio float64) {
	v.updateParamsCalls++
	v.lastStiffness = stiffness
	v.lastSteerRatio = steerRatio
}

func (v *fakeVehicle) CurvatureFactor(vEgo float64) float64 { return 0.001 * vEgo * vEgo }
func (v *fakeVehicle) SR() float64                          { return v.sr }
