package components

import (
	"github.com/automoto/starcarrier/shared/events"
	"github.com/yohamta/donburi"
)

// EffectData is one transient visual effect. Each effect is its own entity
// and is removed once it expires.
type EffectData struct {
	events.Effect
}

var Effect = donburi.NewComponentType[EffectData]()
