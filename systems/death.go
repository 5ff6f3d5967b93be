package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/yohamta/donburi"
)

// UpdateDeaths removes units that left the world this tick, together with
// their collision boxes.
func UpdateDeaths(w donburi.World) {
	markDeparted(w)

	var toRemove []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})

	spaceEntry, hasSpace := components.Space.First(w)
	for _, e := range toRemove {
		if hasSpace && e.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		w.Remove(e.Entity())
	}
}
