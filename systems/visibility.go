package systems

import (
	"github.com/yohamta/donburi"
)

// UpdateVisibility recomputes the fog-of-war grid from friendly vision.
func UpdateVisibility(w donburi.World) {
	sim := simData(w)
	if sim == nil || sim.Visibility == nil {
		return
	}
	friendlies, enemies := unitsByFaction(w)
	sim.VisibleEnemies = sim.Visibility.Update(friendlies, enemies)
}
