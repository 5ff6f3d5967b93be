package factory

import (
	"github.com/automoto/starcarrier/archetypes"
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/automoto/starcarrier/tags"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns a new airborne fighter at pos.
func CreateFighter(w donburi.World, pos gamemath.Vector) *donburi.Entry {
	return AddFighter(w, units.NewFighter(pos))
}

// AddFighter puts an existing fighter into the world, typically one that
// just left a carrier deck.
func AddFighter(w donburi.World, f *units.Fighter) *donburi.Entry {
	if f.Bus == nil {
		f.Bus = simBus(w)
	}

	e := archetypes.Fighter.Spawn(w)
	attachObject(w, e, &f.Unit, tags.ResolvUnit, tags.ResolvFriendly, tags.ResolvFighter)
	components.Unit.SetValue(e, components.UnitData{Unit: &f.Unit})
	components.Fighter.SetValue(e, components.FighterData{Fighter: f})
	return e
}
