package scenario

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(os.DirFS("testdata"), "skirmish.tmx", 6)
	require.NoError(t, err)

	assert.Equal(t, "skirmish", s.Name)
	assert.Equal(t, 1600, s.MapWidth)
	assert.Equal(t, 1280, s.MapHeight)

	require.Len(t, s.Carriers, 3)
	assert.Equal(t, CarrierSpawn{X: 400, Y: 300, Rotation: 90, Fighters: 4}, s.Carriers[0])
	assert.Equal(t, 6, s.Carriers[1].Fighters, "missing property uses the default loadout")
	assert.Equal(t, 0.0, s.Carriers[1].Rotation)
	assert.Equal(t, 0, s.Carriers[2].Fighters, "explicit zero keeps an empty hangar")

	assert.Equal(t, []Spawn{{X: 520, Y: 300}}, s.Units)
	assert.Equal(t, []Spawn{{X: 600, Y: 350}}, s.Fighters)
	assert.Len(t, s.Enemies, 3)
}

func TestLoad_SpawnOutsideMap(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "outside.tmx", 6)

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, GroupEnemies, spawnErr.Group)
	assert.Equal(t, 0, spawnErr.Index)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx", 6)
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	data, err := os.ReadFile("testdata/skirmish.tmx")
	require.NoError(t, err)
	fsys := fstest.MapFS{
		"maps/beta.tmx":  &fstest.MapFile{Data: data},
		"maps/alpha.tmx": &fstest.MapFile{Data: data},
	}

	scenarios, names, err := LoadAll(fsys, "maps", 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
	assert.Len(t, scenarios, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "maps", 6)
	assert.Error(t, err)
}

func TestLoadAll_RootDir(t *testing.T) {
	data, err := os.ReadFile("testdata/skirmish.tmx")
	require.NoError(t, err)
	fsys := fstest.MapFS{"skirmish.tmx": &fstest.MapFile{Data: data}}

	scenarios, names, err := LoadAll(fsys, ".", 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"skirmish"}, names)
	assert.Len(t, scenarios["skirmish"].Carriers, 3)
}

func TestDefault(t *testing.T) {
	s := Default(6)
	require.NoError(t, s.Validate())
	require.Len(t, s.Carriers, 1)
	assert.Equal(t, 6, s.Carriers[0].Fighters)
	assert.NotEmpty(t, s.Enemies)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		s     Scenario
		group string
	}{
		{"empty map", Scenario{}, "map"},
		{"carrier outside", Scenario{MapWidth: 100, MapHeight: 100, Carriers: []CarrierSpawn{{X: 101}}}, GroupCarriers},
		{"negative loadout", Scenario{MapWidth: 100, MapHeight: 100, Carriers: []CarrierSpawn{{Fighters: -1}}}, GroupCarriers},
		{"unit outside", Scenario{MapWidth: 100, MapHeight: 100, Units: []Spawn{{X: -1}}}, GroupUnits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spawnErr *SpawnError
			require.ErrorAs(t, tt.s.Validate(), &spawnErr)
			assert.Equal(t, tt.group, spawnErr.Group)
		})
	}
}

func TestLoadAll_ShippedScenarios(t *testing.T) {
	scenarios, names, err := LoadAll(os.DirFS("../.."), "scenarios", 6)
	require.NoError(t, err)
	require.Contains(t, names, "twin_carriers")

	s := scenarios["twin_carriers"]
	assert.Equal(t, 4000, s.MapWidth)
	assert.Equal(t, 3200, s.MapHeight)
	require.Len(t, s.Carriers, 2)
	assert.Equal(t, 4, s.Carriers[1].Fighters)
	assert.Len(t, s.Enemies, 6)
}
