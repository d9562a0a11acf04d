package planner

// authorityLimiter tables: breakpoints and limits for the driver-torque
// fight window and the low-speed window.
var (
	fightTorqueXp   = []float64{-450, 0, 450}
	fightLimitFp    = []float64{5, 0, 5}
	lowSpeedKphXp   = []float64{5, 15, 30}
	lowSpeedLimitFp = []float64{1, 3, 5}
)

// applyAuthorityLimit reshapes the MPC's desired angle against driver
// torque and low-speed regime. org is the pre-limit
// angle; angleSteers is the current measured wheel angle, used both
// as the clamp offset and, when the driver is pressing, to derive the
// planner-vs-driver divergence direction.
func applyAuthorityLimit(org, angleSteers, steeringTorque, vKph float64, steeringPressed bool) float64 {
	if steeringPressed {
		deltaSteer := org - angleSteers
		limit := interp(steeringTorque, fightTorqueXp, fightLimitFp)
		switch {
		case steeringTorque < 0 && deltaSteer > 0:
			// Driver pulling right, planner wants left: cap the fight.
			return limitCtrl(org, limit, angleSteers)
		case steeringTorque > 0 && deltaSteer < 0:
			// Driver pulling left, planner wants right: cap the fight.
			return limitCtrl(org, limit, angleSteers)
		default:
			return org
		}
	}

	if vKph < 30 {
		limit := interp(vKph, lowSpeedKphXp, lowSpeedLimitFp)
		return limitCtrl(org, limit, angleSteers)
	}

	return org
}
