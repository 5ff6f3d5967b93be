package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/systems/factory"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

// UpdateAvoidance steers point moves around carriers for the coming tick.
// Landing fighters fly their own avoidance.
func UpdateAvoidance(w donburi.World) {
	var carriers []*units.Carrier
	components.Carrier.Each(w, func(e *donburi.Entry) {
		if c := components.Carrier.Get(e).Carrier; c.Alive() {
			carriers = append(carriers, c)
		}
	})
	if len(carriers) == 0 {
		return
	}

	components.Unit.Each(w, func(e *donburi.Entry) {
		u := components.Unit.Get(e).Unit
		if u.State != units.StateMoving || u.Target == nil || u.Target.Unit != nil {
			return
		}
		if e.HasComponent(components.Fighter) && components.Fighter.Get(e).IsLanding() {
			return
		}
		for _, c := range carriers {
			if wp, ok := units.AvoidanceWaypoint(u, &c.Unit); ok {
				u.Detour = &wp
				return
			}
		}
	})
}

// UpdateUnits advances every unit's state machine and spawns the effects
// their attacks produce.
func UpdateUnits(w donburi.World, dt float64) {
	var fx []events.Effect
	components.Unit.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		fx = append(fx, components.ActorOf(e).Update(dt)...)
	})
	factory.SpawnEffects(w, fx)

	markDeparted(w)
}

// markDeparted flags units that leave the world this tick: the destroyed
// and fighters now stored aboard a carrier.
func markDeparted(w donburi.World) {
	type departure struct {
		entry  *donburi.Entry
		reason string
	}
	var gone []departure

	components.Unit.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		switch {
		case !components.Unit.Get(e).Alive():
			gone = append(gone, departure{e, components.DeathDestroyed})
		case e.HasComponent(components.Fighter) && components.Fighter.Get(e).LandingComplete:
			gone = append(gone, departure{e, components.DeathStored})
		}
	})

	for _, d := range gone {
		donburi.Add(d.entry, components.Death, &components.DeathData{Reason: d.reason})
	}
}
