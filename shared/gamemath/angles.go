package gamemath

import "math"

// Epsilon is the magnitude below which vectors are treated as zero.
const Epsilon = 1e-9

// NormalizeAngle wraps deg into [0,360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Bearing returns the angle of (to - from) measured counterclockwise from
// the +X axis, in [0,360).
func Bearing(fromX, fromY, toX, toY float64) float64 {
	return NormalizeAngle(math.Atan2(toY-fromY, toX-fromX) * 180 / math.Pi)
}

// AngleDiff returns the signed shortest rotation from current to target in
// (-180,180].
func AngleDiff(current, target float64) float64 {
	diff := NormalizeAngle(target - current)
	if diff > 180 {
		diff -= 360
	}
	return diff
}

// TurnToward rotates current toward target by at most maxDelta degrees.
// When the remaining difference fits in the budget the result is target
// exactly, so repeated calls converge without oscillating.
func TurnToward(current, target, maxDelta float64) float64 {
	diff := AngleDiff(current, target)
	if math.Abs(diff) <= maxDelta {
		return NormalizeAngle(target)
	}
	if diff > 0 {
		return NormalizeAngle(current + maxDelta)
	}
	return NormalizeAngle(current - maxDelta)
}
