package factory

import (
	"github.com/automoto/starcarrier/archetypes"
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/yohamta/donburi"
)

// SpawnEffect creates a transient effect entity. Expired effects are
// ignored.
func SpawnEffect(w donburi.World, fx events.Effect) *donburi.Entry {
	if fx.Expired() {
		return nil
	}
	e := archetypes.Effect.Spawn(w)
	components.Effect.SetValue(e, components.EffectData{Effect: fx})
	return e
}

// SpawnEffects creates one entity per effect.
func SpawnEffects(w donburi.World, fx []events.Effect) {
	for _, f := range fx {
		SpawnEffect(w, f)
	}
}
