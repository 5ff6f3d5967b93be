package archetypes

import (
	"slices"

	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/tags"
	"github.com/yohamta/donburi"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Sim = newArchetype(
		components.Sim,
	)
	Unit = newArchetype(
		tags.Friendly,
		components.Unit,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Unit,
		components.Object,
	)
	Fighter = newArchetype(
		tags.Friendly,
		tags.Fighter,
		components.Unit,
		components.Fighter,
		components.Object,
	)
	Carrier = newArchetype(
		tags.Friendly,
		tags.Carrier,
		components.Unit,
		components.Carrier,
		components.Object,
	)
	Effect = newArchetype(
		components.Effect,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
