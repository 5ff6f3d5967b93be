package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed rescales vel so its length does not exceed max, keeping its
// direction.
func ClampSpeed(vel Vector, max float64) Vector {
	speed := vel.Len()
	if speed <= max || speed < Epsilon {
		return vel
	}
	return vel.Scale(max / speed)
}

// BrakingDistance is the distance needed to stop from speed at the given
// deceleration.
func BrakingDistance(speed, decel float64) float64 {
	if decel <= 0 {
		return math.Inf(1)
	}
	return speed * speed / (2 * decel)
}

// Damping returns the velocity multiplier applied to a misaligned body.
// Perfect alignment keeps all momentum; perpendicular flight bleeds 80% per
// second.
func Damping(dt, alignment float64) float64 {
	return Clamp(1-0.8*dt*(1-math.Abs(alignment)), 0, 1)
}

// CalculateHomingVelocity returns a velocity of the given speed pointing
// from (x, y) toward (targetX, targetY). Zero when already there.
func CalculateHomingVelocity(x, y, targetX, targetY, speed float64) Vector {
	dir := Vec(targetX-x, targetY-y)
	dist := dir.Len()
	if dist < Epsilon {
		return Vector{}
	}
	return dir.Scale(speed / dist)
}
