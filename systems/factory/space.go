package factory

import (
	"math/rand/v2"

	"github.com/automoto/starcarrier/archetypes"
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/visibility"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateSim spawns the shared simulation state. The seed makes collision
// tie-breaks reproducible.
func CreateSim(w donburi.World, bus *events.Bus, seed uint64, grid *visibility.Grid) *donburi.Entry {
	sim := archetypes.Sim.Spawn(w)
	components.Sim.SetValue(sim, components.SimData{
		Bus:        bus,
		Rand:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Visibility: grid,
	})
	return sim
}

func simBus(w donburi.World) *events.Bus {
	if e, ok := components.Sim.First(w); ok {
		return components.Sim.Get(e).Bus
	}
	return nil
}
