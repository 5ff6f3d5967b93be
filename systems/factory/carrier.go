package factory

import (
	"github.com/automoto/starcarrier/archetypes"
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/automoto/starcarrier/tags"
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

// CreateCarrier spawns a carrier facing rotation with fighters already
// stowed. The loadout is capped at the carrier's capacity.
func CreateCarrier(w donburi.World, pos gamemath.Vector, rotation float64, fighters int) *donburi.Entry {
	c := units.NewCarrier(pos)
	c.Rotation = gamemath.NormalizeAngle(rotation)
	c.Bus = simBus(w)
	for i := 0; i < fighters && c.StoredCount() < c.FighterCapacity; i++ {
		c.StoreFighter(units.NewFighter(pos))
	}

	e := archetypes.Carrier.Spawn(w)
	attachObject(w, e, &c.Unit, tags.ResolvUnit, tags.ResolvFriendly, tags.ResolvCarrier)
	components.Unit.SetValue(e, components.UnitData{Unit: &c.Unit})
	components.Carrier.SetValue(e, components.CarrierData{Carrier: c})
	return e
}
