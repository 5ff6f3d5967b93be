package units

import (
	"math"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/gamemath"
)

// Advance moves u one step toward (targetX, targetY). The unit turns by at
// most MaxRotationSpeed*dt, thrusts along its nose scaled by how well it is
// aimed, and bleeds momentum while misaligned. Inside the braking distance
// the thrust reverses.
func Advance(u *Unit, targetX, targetY, dt float64) {
	if dt <= 0 {
		return
	}
	target := gamemath.Vec(targetX, targetY)
	toTarget := target.Sub(u.Pos)
	dist := toTarget.Len()

	desired := gamemath.Bearing(u.Pos.X, u.Pos.Y, targetX, targetY)
	u.Rotation = gamemath.TurnToward(u.Rotation, desired, u.MaxRotationSpeed*dt)
	forward := gamemath.Forward(u.Rotation)

	dir := toTarget.Scale(1 / math.Max(config.Combat.AlignmentFloor, dist))
	alignment := gamemath.Clamp(forward.Dot(dir), -1, 1)

	thrust := u.Acceleration * dt
	if dist < gamemath.BrakingDistance(u.MaxSpeed, u.Acceleration) {
		thrust = -thrust
	}
	u.Vel = u.Vel.Add(forward.Scale(thrust * alignment))

	u.Vel = gamemath.ClampSpeed(u.Vel, u.MaxSpeed)
	u.Vel = u.Vel.Scale(gamemath.Damping(dt, alignment))
	u.Pos = u.Pos.Add(u.Vel.Scale(dt))
}
