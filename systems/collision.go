package systems

import (
	"math/rand/v2"

	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/tags"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

// UpdateCollisions pushes apart every overlapping pair of collidable units.
// The resolv space supplies candidate pairs; each pair is resolved once,
// in world order. Pairs involving a carrier separate by mass.
func UpdateCollisions(w donburi.World) {
	UpdateObjects(w)

	var rng *rand.Rand
	if sim := simData(w); sim != nil {
		rng = sim.Rand
	}

	var entries []*donburi.Entry
	order := make(map[donburi.Entity]int)
	components.Unit.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Object) {
			return
		}
		order[e.Entity()] = len(entries)
		entries = append(entries, e)
	})

	resolved := 0
	for i, e := range entries {
		a := components.Unit.Get(e).Unit
		if !a.Alive() || !a.CollisionEnabled {
			continue
		}
		obj := components.Object.Get(e).Object
		if obj.Space == nil {
			continue
		}
		check := obj.Check(0, 0, tags.ResolvUnit)
		if check == nil {
			continue
		}
		for _, other := range check.ObjectsByTags(tags.ResolvUnit) {
			oe, ok := other.Data.(*donburi.Entry)
			if !ok || !oe.Valid() {
				continue
			}
			if j, ok := order[oe.Entity()]; !ok || j <= i {
				continue
			}
			b := components.Unit.Get(oe).Unit
			if !units.CanCollide(a, b) {
				continue
			}
			if units.ResolveCollision(a, b, units.NeedsMassWeighting(a, b), rng) {
				resolved++
			}
		}
	}

	UpdateObjects(w)

	if resolved > 0 {
		publish(w, events.Event{Kind: events.CollisionsResolved, Count: resolved})
	}
}
