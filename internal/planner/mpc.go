package planner

import (
	"math"
	"time"

	"github.com/openadas/latplanner/internal/collab"
)

// mpcDriver marshals planner state into the solver, invokes it, and
// recovers from infeasible solutions. The solver is
// re-initialised on construction and after any NaN solution.
type mpcDriver struct {
	solver collab.Solver
	cost   MPCCostLat
}

func newMPCDriver(solver collab.Solver, cost MPCCostLat, steerRateCost float64) *mpcDriver {
	d := &mpcDriver{solver: solver, cost: cost}
	d.reinit(steerRateCost)
	return d
}

func (d *mpcDriver) reinit(steerRateCost float64) {
	d.solver.Init(d.cost.Path, d.cost.Lane, d.cost.Heading, steerRateCost)
}

// mpcResult is what one tick's MPC invocation produces, already
// folded down to the fields the rest of the pipeline needs.
type mpcResult struct {
	deltaDesired float64 // rad, road wheel angle
	rateDesired  float64 // deg/s
	solution     collab.Solution
	nans         bool
}

// run performs steps 1-5: clamp v_ego for the solver,
// invoke it, and pick the one-step-ahead delta when engaged or
// shadow-follow the driver's current angle when not (so
// re-engagement is bumpless).
func (d *mpcDriver) run(
	st *plannerState,
	lane collab.LaneLineSource,
	curvatureFactor, vEgo, angleSteers, angleOffset, steerRatio float64,
	active bool,
) mpcResult {
	vEgoMpc := math.Max(vEgo, vEgoMpcFloor)

	sol := d.solver.Run(st.curState, lane.LPoly(), lane.RPoly(), lane.DPoly(), lane.LProb(), lane.RProb(), curvatureFactor, vEgoMpc, lane.LaneWidth())

	nans := anyNaN(sol.Delta)

	var deltaDesired, rateDesired float64
	if active {
		deltaDesired = sampleAt(sol.Delta, 1)
		rateDesired = radToDeg(sampleAt(sol.Rate, 0) * steerRatio)
	} else {
		// Disengaged: shadow-follow the driver's current angle so
		// re-engagement is bumpless.
		deltaDesired = degToRad(angleSteers-angleOffset) / steerRatio
		rateDesired = 0
	}

	st.curState.Delta = deltaDesired

	return mpcResult{deltaDesired: deltaDesired, rateDesired: rateDesired, solution: sol, nans: nans}
}

// handleResult applies steps 6-8: compute the published
// angle, recover from NaNs with a rate-limited warning, and update the
// solution-invalid counter.
func (d *mpcDriver) handleResult(
	st *plannerState,
	res mpcResult,
	steerRatio, angleSteers, angleOffset float64,
	now time.Time,
) (angleSteersDesMpcDeg float64) {
	angleSteersDesMpcDeg = radToDeg(res.deltaDesired*steerRatio) + angleOffset

	if res.nans {
		d.reinit(st.steerRateCost)
		st.curState.Delta = degToRad(angleSteers-angleOffset) / steerRatio

		if st.lastCloudlogT.IsZero() || now.Sub(st.lastCloudlogT) > nanWarnInterval {
			st.lastCloudlogT = now
			log.Warn("lateral mpc - nan: true")
		}
	}

	if res.solution.Cost > solutionCostCeiling || res.nans {
		st.solutionInvalidCnt++
	} else {
		st.solutionInvalidCnt = 0
	}

	return angleSteersDesMpcDeg
}

func anyNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

// sampleAt returns xs[i], or the last available sample if the solver
// returned a shorter horizon than expected - defensive only against a
// malformed collaborator, never hit by a conforming Solver.
func sampleAt(xs []float64, i int) float64 {
	if i < len(xs) {
		return xs[i]
	}
	if len(xs) > 0 {
		return xs[len(xs)-1]
	}
	return math.NaN()
}

func degToRad(deg float64) float64 { return math.Pi * deg / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
