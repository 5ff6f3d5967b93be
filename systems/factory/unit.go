package factory

import (
	"github.com/automoto/starcarrier/archetypes"
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/automoto/starcarrier/tags"
	"github.com/automoto/starcarrier/units"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateUnit spawns a plain combat unit of either faction.
func CreateUnit(w donburi.World, faction units.Faction, pos gamemath.Vector, stats config.UnitConfig) *donburi.Entry {
	u := units.New(faction, pos, stats)
	u.Bus = simBus(w)

	var e *donburi.Entry
	if faction == units.Enemy {
		e = archetypes.Enemy.Spawn(w)
		attachObject(w, e, u, tags.ResolvUnit, tags.ResolvEnemy)
	} else {
		e = archetypes.Unit.Spawn(w)
		attachObject(w, e, u, tags.ResolvUnit, tags.ResolvFriendly)
	}
	components.Unit.SetValue(e, components.UnitData{Unit: u})
	return e
}

func CreateEnemy(w donburi.World, pos gamemath.Vector) *donburi.Entry {
	return CreateUnit(w, units.Enemy, pos, config.Enemy)
}

// attachObject creates the unit's collision box, centered on its position,
// and adds it to the space if one exists.
func attachObject(w donburi.World, e *donburi.Entry, u *units.Unit, resolvTags ...string) {
	size := u.Radius * 2
	obj := resolv.NewObject(u.Pos.X-u.Radius, u.Pos.Y-u.Radius, size, size, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
