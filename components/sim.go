package components

import (
	"math/rand/v2"

	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/units"
	"github.com/automoto/starcarrier/visibility"
	"github.com/yohamta/donburi"
)

// SimData is the singleton holding state shared by all systems.
type SimData struct {
	Bus        *events.Bus
	Rand       *rand.Rand
	Visibility *visibility.Grid

	Tick    uint64
	Elapsed float64 // simulated seconds

	// VisibleEnemies is the result of the last visibility pass.
	VisibleEnemies []*units.Unit
}

var Sim = donburi.NewComponentType[SimData]()
