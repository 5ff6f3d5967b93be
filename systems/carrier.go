package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/systems/factory"
	"github.com/automoto/starcarrier/targeting"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

type launch struct {
	carrier *units.Carrier
	fighter *units.Fighter
}

// UpdateCarrierOps runs every carrier's cooldowns and launch queue.
// Fighters launched this tick join the world before any unit moves.
func UpdateCarrierOps(w donburi.World, dt float64) {
	var launched []launch
	components.Carrier.Each(w, func(e *donburi.Entry) {
		c := components.Carrier.Get(e).Carrier
		if f := c.UpdateOperations(dt); f != nil {
			launched = append(launched, launch{carrier: c, fighter: f})
		}
	})

	for _, l := range launched {
		factory.AddFighter(w, l.fighter)
		factory.SpawnEffect(w, units.LaunchFlare(l.carrier, l.fighter))
	}
}

// UpdateLandingQueues retires finished landings and drops queue entries
// whose fighter is gone.
func UpdateLandingQueues(w donburi.World) {
	airborne := make(map[*units.Fighter]bool)
	components.Fighter.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			airborne[components.Fighter.Get(e).Fighter] = true
		}
	})
	inWorld := func(f *units.Fighter) bool { return airborne[f] }

	components.Carrier.Each(w, func(e *donburi.Entry) {
		components.Carrier.Get(e).ProcessLandingQueue(inWorld)
	})
}

// UpdateProximity refreshes each carrier's collision warnings. Fighters
// landing on that carrier are expected inbound traffic and are skipped.
func UpdateProximity(w donburi.World) {
	var all []*units.Unit
	inbound := make(map[*units.Unit]*units.Carrier)
	components.Unit.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		u := components.Unit.Get(e).Unit
		all = append(all, u)
		if e.HasComponent(components.Fighter) {
			if c := components.Fighter.Get(e).TargetCarrier; c != nil {
				inbound[u] = c
			}
		}
	})

	components.Carrier.Each(w, func(ce *donburi.Entry) {
		c := components.Carrier.Get(ce).Carrier
		if !c.Alive() {
			return
		}
		for _, u := range targeting.InRadius(c.Pos, all, c.ProximityRadius) {
			if !c.CheckProximity(u) || inbound[u] == c {
				continue
			}
			c.PredictCollision(u, config.Carrier.PredictionHorizon)
		}
	})
}
