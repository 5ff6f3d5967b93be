package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

func simData(w donburi.World) *components.SimData {
	if e, ok := components.Sim.First(w); ok {
		return components.Sim.Get(e)
	}
	return nil
}

func publish(w donburi.World, e events.Event) {
	if sim := simData(w); sim != nil {
		sim.Bus.Publish(e)
	}
}

// unitsByFaction returns the units still in the world, split by side.
func unitsByFaction(w donburi.World) (friendlies, enemies []*units.Unit) {
	components.Unit.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		u := components.Unit.Get(e).Unit
		if u.Faction == units.Enemy {
			enemies = append(enemies, u)
		} else {
			friendlies = append(friendlies, u)
		}
	})
	return friendlies, enemies
}
