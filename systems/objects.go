package systems

import (
	"github.com/automoto/starcarrier/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every collision box onto its unit.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		if !e.HasComponent(components.Unit) {
			continue
		}
		u := components.Unit.Get(e)
		obj := components.Object.Get(e)
		obj.X = u.Pos.X - u.Radius
		obj.Y = u.Pos.Y - u.Radius
		obj.W = u.Radius * 2
		obj.H = u.Radius * 2
		obj.Update()
	}
}
