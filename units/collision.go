package units

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/gamemath"
)

// Overlapping reports whether two units touch or intersect.
func Overlapping(a, b *Unit) bool {
	return a.Pos.DistanceTo(b.Pos) <= a.Radius+b.Radius
}

// NeedsMassWeighting reports whether a pair must be separated by mass.
// Light units never shove a carrier.
func NeedsMassWeighting(a, b *Unit) bool {
	return a.Kind == KindCarrier || b.Kind == KindCarrier
}

// CanCollide reports whether the pair takes part in collision resolution.
func CanCollide(a, b *Unit) bool {
	return a != b && a.Alive() && b.Alive() && a.CollisionEnabled && b.CollisionEnabled
}

// ResolveCollision pushes a and b apart along the line between their
// centers until they just touch. With useMass the heavier unit moves less.
// Coincident centers separate in a random direction drawn from rng.
// It reports whether the pair overlapped.
func ResolveCollision(a, b *Unit, useMass bool, rng *rand.Rand) bool {
	if a == b || !Overlapping(a, b) {
		return false
	}

	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	var normal gamemath.Vector
	if dist < config.Collision.TieDistance {
		angle := randFloat(rng) * 2 * math.Pi
		normal = gamemath.Vec(math.Cos(angle), math.Sin(angle))
	} else {
		normal = delta.Scale(1 / dist)
	}
	overlap := a.Radius + b.Radius - dist

	shareA, shareB := 0.5, 0.5
	if useMass || NeedsMassWeighting(a, b) {
		if total := a.Mass + b.Mass; total > 0 {
			shareA = b.Mass / total
			shareB = a.Mass / total
		}
	}

	a.Pos = a.Pos.Sub(normal.Scale(overlap * shareA))
	b.Pos = b.Pos.Add(normal.Scale(overlap * shareB))
	return true
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// AvoidanceWaypoint steers a point move around obstacle. When the straight
// path from u to its target passes within AvoidanceFactor obstacle radii of
// an obstacle that lies ahead and short of the target, it returns a point
// pushed sideways clear of it. The caller decides whether to honor it.
func AvoidanceWaypoint(u, obstacle *Unit) (gamemath.Vector, bool) {
	if u == obstacle || u.Target == nil || u.Target.Unit != nil {
		return gamemath.Vector{}, false
	}
	return avoidPoint(u.Pos, u.Target.Point, obstacle)
}

func avoidPoint(from, dest gamemath.Vector, obstacle *Unit) (gamemath.Vector, bool) {
	path := dest.Sub(from)
	pathLen := path.Len()
	if pathLen < gamemath.Epsilon {
		return gamemath.Vector{}, false
	}
	dir := path.Scale(1 / pathLen)

	proj := obstacle.Pos.Sub(from).Dot(dir)
	if proj <= 0 || proj >= pathLen {
		return gamemath.Vector{}, false
	}

	closest := from.Add(dir.Scale(proj))
	offset := closest.Sub(obstacle.Pos)
	perp := offset.Len()
	threshold := config.Collision.AvoidanceFactor * obstacle.Radius
	if perp >= threshold {
		return gamemath.Vector{}, false
	}

	side := dir.Perp()
	if perp > gamemath.Epsilon {
		side = offset.Scale(1 / perp)
	}
	push := threshold - perp + config.Collision.AvoidanceSafetyMargin
	return closest.Add(side.Scale(push)), true
}
