package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/tags"
	"github.com/automoto/starcarrier/targeting"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

// UpdateTargeting gives idle units the nearest opponent to fight. Friendly
// picks are limited to what the fog-of-war grid shows when gating is on.
// Carriers only fight on order, and fighters that are landing or on patrol
// are left alone.
func UpdateTargeting(w donburi.World) {
	var vis targeting.Visibility
	if sim := simData(w); sim != nil && sim.Visibility != nil && config.Visibility.GateTargeting {
		vis = sim.Visibility
	}
	friendlies, enemies := unitsByFaction(w)
	sides := map[units.Faction][]*units.Unit{
		units.Friendly: friendlies,
		units.Enemy:    enemies,
	}

	components.Unit.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Carrier) || e.HasComponent(components.Death) {
			return
		}
		u := components.Unit.Get(e).Unit
		if !u.Alive() || u.State != units.StateIdle {
			return
		}

		// Enemies see through the fog.
		seen := vis
		if u.Faction == units.Enemy {
			seen = nil
		}
		t := targeting.FindClosest(u, sides[u.Faction.Opponent()], seen)
		if t == nil {
			return
		}
		if e.HasComponent(components.Fighter) {
			f := components.Fighter.Get(e).Fighter
			if f.IsLanding() || f.Patrolling || f.LandingComplete {
				return
			}
			f.Attack(t)
			return
		}
		u.Attack(t)
	})
}
