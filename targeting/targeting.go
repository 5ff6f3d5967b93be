// Package targeting selects enemies by distance. Selection can be gated
// by a Visibility source so units never lock onto what nobody can see.
package targeting

import (
	"math"

	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/automoto/starcarrier/units"
)

// Visibility answers whether a world point is currently seen.
type Visibility interface {
	IsPositionVisible(x, y float64) bool
}

// FindClosest returns the live candidate nearest to u, or nil. A non-nil
// vis drops candidates standing in fog.
func FindClosest(u *units.Unit, candidates []*units.Unit, vis Visibility) *units.Unit {
	var best *units.Unit
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if c == u || !c.Alive() {
			continue
		}
		if vis != nil && !vis.IsPositionVisible(c.Pos.X, c.Pos.Y) {
			continue
		}
		if d := u.Pos.DistanceTo(c.Pos); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// ClosestToPoint returns the live enemy whose center is nearest to p, for
// lock-on style orders.
func ClosestToPoint(p gamemath.Vector, enemies []*units.Unit) *units.Unit {
	var best *units.Unit
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		if d := p.DistanceTo(e.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// InRadius returns the live units whose centers lie within r of p.
func InRadius(p gamemath.Vector, candidates []*units.Unit, r float64) []*units.Unit {
	var out []*units.Unit
	for _, e := range candidates {
		if e.Alive() && p.DistanceTo(e.Pos) <= r {
			out = append(out, e)
		}
	}
	return out
}
