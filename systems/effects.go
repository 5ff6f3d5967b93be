package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/yohamta/donburi"
)

// UpdateEffects ages every effect and removes the expired ones.
func UpdateEffects(w donburi.World, dt float64) {
	var toRemove []donburi.Entity

	components.Effect.Each(w, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		fx.Update(dt)
		if fx.Expired() {
			toRemove = append(toRemove, e.Entity())
		}
	})

	for _, entity := range toRemove {
		w.Remove(entity)
	}
}

// ActiveEffects returns a copy of every live effect.
func ActiveEffects(w donburi.World) []events.Effect {
	var out []events.Effect
	components.Effect.Each(w, func(e *donburi.Entry) {
		out = append(out, components.Effect.Get(e).Effect)
	})
	return out
}
