package units

import (
	"slices"

	"github.com/automoto/starcarrier/shared/gamemath"
)

// CheckProximity reports whether u is inside the carrier's awareness
// radius.
func (c *Carrier) CheckProximity(u *Unit) bool {
	if u == &c.Unit {
		return false
	}
	return c.Pos.DistanceTo(u.Pos) <= c.ProximityRadius
}

// PredictCollision reports whether u, holding its current velocity, comes
// within touching distance of the carrier during the next horizon seconds.
// Units on a collision course are tracked in CollisionWarnings.
func (c *Carrier) PredictCollision(u *Unit, horizon float64) bool {
	if u == &c.Unit {
		return false
	}
	imminent := false
	if u.Vel.Len() >= 0.1 {
		relPos := u.Pos.Sub(c.Pos)
		relVel := u.Vel.Sub(c.Vel)
		t := 0.0
		if vv := relVel.Dot(relVel); vv > gamemath.Epsilon {
			t = gamemath.Clamp(-relPos.Dot(relVel)/vv, 0, horizon)
		}
		closest := relPos.Add(relVel.Scale(t))
		imminent = closest.Len() < c.Radius+u.Radius
	}

	i := slices.Index(c.CollisionWarnings, u)
	switch {
	case imminent && i < 0:
		c.CollisionWarnings = append(c.CollisionWarnings, u)
	case !imminent && i >= 0:
		c.CollisionWarnings = slices.Delete(c.CollisionWarnings, i, i+1)
	}
	return imminent
}
