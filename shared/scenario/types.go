// Package scenario describes the initial layout of a skirmish: world size
// and where each side's units start. Layouts come from Tiled TMX maps or
// the built-in Default. It has no dependency on donburi or resolv.
package scenario

// Scenario is a pure-data spawn layout.
type Scenario struct {
	Name      string
	MapWidth  int
	MapHeight int

	Carriers []CarrierSpawn
	Units    []Spawn // friendly combat units
	Fighters []Spawn // friendly fighters already airborne
	Enemies  []Spawn
}

// Spawn is a unit start position.
type Spawn struct {
	X, Y float64
}

// CarrierSpawn places a carrier with an initial fighter loadout.
type CarrierSpawn struct {
	X, Y     float64
	Rotation float64 // degrees
	Fighters int
}

// Default returns the built-in skirmish: one carrier group on the west
// side facing an enemy wing to the east.
func Default(fighters int) *Scenario {
	return &Scenario{
		Name:      "default",
		MapWidth:  4000,
		MapHeight: 3000,
		Carriers: []CarrierSpawn{
			{X: 700, Y: 1500, Rotation: 0, Fighters: fighters},
		},
		Units: []Spawn{
			{X: 820, Y: 1380},
			{X: 820, Y: 1620},
		},
		Enemies: []Spawn{
			{X: 2600, Y: 1400},
			{X: 2650, Y: 1600},
			{X: 2800, Y: 1500},
			{X: 3000, Y: 1300},
			{X: 3000, Y: 1700},
		},
	}
}

// Validate reports the first spawn outside the map.
func (s *Scenario) Validate() error {
	if s.MapWidth <= 0 || s.MapHeight <= 0 {
		return &SpawnError{Group: "map", Reason: "non-positive map size"}
	}
	inside := func(x, y float64) bool {
		return x >= 0 && y >= 0 && x <= float64(s.MapWidth) && y <= float64(s.MapHeight)
	}
	for i, c := range s.Carriers {
		if !inside(c.X, c.Y) {
			return &SpawnError{Group: GroupCarriers, Index: i, Reason: "outside map"}
		}
		if c.Fighters < 0 {
			return &SpawnError{Group: GroupCarriers, Index: i, Reason: "negative fighter count"}
		}
	}
	groups := []struct {
		name   string
		spawns []Spawn
	}{
		{GroupUnits, s.Units},
		{GroupFighters, s.Fighters},
		{GroupEnemies, s.Enemies},
	}
	for _, g := range groups {
		for i, sp := range g.spawns {
			if !inside(sp.X, sp.Y) {
				return &SpawnError{Group: g.name, Index: i, Reason: "outside map"}
			}
		}
	}
	return nil
}
