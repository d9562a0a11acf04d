package planner

import (
	"math"

	"github.com/openadas/latplanner/internal/message"
)

// laneChangeFadeSpeedKph/Rate interpolate the Starting-state fade-out
// rate from ego speed.
var (
	laneChangeFadeSpeedKph = []float64{40, 60, 70, 80}
	laneChangeFadeRate     = []float64{0.5, 1.0, 1.5, 2.0}
)

// laneChangeInputs are the per-tick signals the FSM reads, derived
// from CarState/ControlsState/the lane-line source.
type laneChangeInputs struct {
	controlsActive  bool
	vEgo            float64
	leftBlinker     bool
	rightBlinker    bool
	steeringPressed bool
	steeringTorque  float64
	leftBlindspot   bool
	rightBlindspot  bool
	laneChangeProb  float64 // LLaneChangeProb + RLaneChangeProb
}

// update runs one tick of the 5-state lane-change FSM and returns the
// desire to publish. The global override is evaluated first, then the
// per-state transition table, exactly in that order;
// run_timer and prev_one_blinker bookkeeping happen last so no
// transition ever observes a partially updated state.
func (f *fsmState) update(in laneChangeInputs) message.Desire {
	oneBlinker := in.leftBlinker != in.rightBlinker
	belowMinSpeed := in.vEgo < LaneChangeSpeedMin

	// Direction latching: left checked first, then right, independent
	// if/else-if, last-asserted-blinker wins. This is deliberately not
	// "cleaned up": preserved literally.
	if in.leftBlinker {
		f.direction = DirectionLeft
	} else if in.rightBlinker {
		f.direction = DirectionRight
	}

	if !in.controlsActive || f.runTimer > LaneChangeTimeMax || !oneBlinker || !f.enabled {
		f.state = LaneChangeOff
		f.direction = DirectionNone
	} else {
		torqueApplied := in.steeringPressed &&
			((in.steeringTorque > 0 && f.direction == DirectionLeft) ||
				(in.steeringTorque < 0 && f.direction == DirectionRight))
		blindspotDetected := (in.leftBlindspot && f.direction == DirectionLeft) ||
			(in.rightBlindspot && f.direction == DirectionRight)

		switch f.state {
		case LaneChangeOff:
			if oneBlinker && !f.prevOneBlinker && !belowMinSpeed {
				f.state = LaneChangePre
				f.llProb = 1.0
				f.waitTimer = 0
			}

		case LaneChangePre:
			switch {
			case !oneBlinker || belowMinSpeed:
				f.state = LaneChangeOff
			case !blindspotDetected && (torqueApplied || (f.autoDelay > 0 && f.waitTimer > f.autoDelay)):
				f.state = LaneChangeStarting
			default:
				f.waitTimer += DTMdl
			}

		case LaneChangeStarting:
			// Fade the lane lines out at a speed-dependent rate of 0.5 to
			// 2.0 per second (flat-extrapolated outside [40,80] kph), i.e.
			// over 2 s at low speed down to 0.5 s at 80 kph and above.
			vKph := in.vEgo * 3.61 // preserved verbatim - not 3.6
			rate := interp(vKph, laneChangeFadeSpeedKph, laneChangeFadeRate)
			f.llProb = math.Max(f.llProb-rate*DTMdl, 0.0)
			if in.laneChangeProb < 0.02 && f.llProb < 0.01 {
				f.state = LaneChangeFinishing
			}

		case LaneChangeFinishing:
			// Fixed 1s fade back in.
			f.llProb = math.Min(f.llProb+DTMdl, 1.0)
			if oneBlinker && f.llProb > 0.99 {
				f.state = LaneChangeDone
			}

		case LaneChangeDone:
			if !oneBlinker {
				f.state = LaneChangeOff
			}
		}
	}

	if f.state == LaneChangeOff || f.state == LaneChangePre {
		f.runTimer = 0.0
	} else {
		f.runTimer += DTMdl
	}
	f.prevOneBlinker = oneBlinker

	return desireFor(f.direction, f.state)
}

// desireFor implements the direction x state -> Desire
// table: None is always "none"; Left/Right is "none" in Off/Pre and
// the matching lane-change desire in Starting/Finishing/Done.
func desireFor(dir LaneChangeDirection, state LaneChangeState) message.Desire {
	if dir == DirectionNone {
		return message.DesireNone
	}
	switch state {
	case LaneChangeStarting, LaneChangeFinishing, LaneChangeDone:
		if dir == DirectionLeft {
			return message.DesireLaneChangeLeft
		}
		return message.DesireLaneChangeRight
	default:
		return message.DesireNone
	}
}
