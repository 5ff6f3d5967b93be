package components

import (
	"github.com/automoto/starcarrier/units"
	"github.com/yohamta/donburi"
)

// UnitData points at the simulation unit an entity stands for. Every unit
// entity has one; fighters and carriers additionally carry their
// specialized component.
type UnitData struct {
	*units.Unit
}

type FighterData struct {
	*units.Fighter
}

type CarrierData struct {
	*units.Carrier
}

var (
	Unit    = donburi.NewComponentType[UnitData]()
	Fighter = donburi.NewComponentType[FighterData]()
	Carrier = donburi.NewComponentType[CarrierData]()
)

// ActorOf returns the most specialized updatable view of a unit entity.
func ActorOf(e *donburi.Entry) units.Actor {
	if e.HasComponent(Carrier) {
		return Carrier.Get(e).Carrier
	}
	if e.HasComponent(Fighter) {
		return Fighter.Get(e).Fighter
	}
	return Unit.Get(e).Unit
}
