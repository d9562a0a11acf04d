package planner

import "github.com/samber/lo"

// limitCtrl clamps value into [offset-limit, offset+limit]. It is a total-order clamp with no side effects, used by the
// authority limiter to keep the commanded angle from diverging too
// far from the driver's current wheel position.
func limitCtrl(value, limit, offset float64) float64 {
	return lo.Clamp(value, offset-limit, offset+limit)
}
