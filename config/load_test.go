package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAll() {
	viper.Reset()
	Reset()
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(resetAll)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"simulation": { "tickRate": 30, "seed": 7 },
		"carrier": { "fighterCapacity": 4, "launchCooldown": 2.5, "stats": { "hp": 900 } },
		"visibility": { "gateTargeting": false }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", Simulation.LogLevel)
	assert.Equal(t, 30, Simulation.TickRate)
	assert.Equal(t, uint64(7), Simulation.Seed)
	assert.Equal(t, 4, Carrier.FighterCapacity)
	assert.Equal(t, 2.5, Carrier.LaunchCooldown)
	assert.Equal(t, 900, Carrier.Stats.HP)
	assert.False(t, Visibility.GateTargeting)

	// untouched keys keep their defaults
	assert.Equal(t, 50.0, Carrier.Stats.Radius)
	assert.Equal(t, 10.0, Landing.Timeout)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(resetAll)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{}`), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "info", Simulation.LogLevel)
	assert.Equal(t, 60, Simulation.TickRate)
	assert.Equal(t, 10, Carrier.FighterCapacity)
	assert.Equal(t, 1.0, Carrier.LaunchCooldown)
	assert.Equal(t, 10.0, Carrier.Stats.Mass)
	assert.Equal(t, 100, Unit.HP)
	assert.Equal(t, 15.0, Unit.Radius)
	assert.Equal(t, 0.5, Landing.AlignHold)
	assert.True(t, Visibility.GateTargeting)
}

func TestLoad_LandingGeometry(t *testing.T) {
	t.Cleanup(resetAll)

	dir := t.TempDir()
	cfg := `{
		"landing": {
			"approachDistance": 4,
			"holdDistance": 1.5,
			"storeDistance": 0.4,
			"landCurveWeight": 0.25,
			"headingOffset": 0
		},
		"collision": { "avoidanceFactor": 2 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, 4.0, Landing.ApproachDistance)
	assert.Equal(t, 1.5, Landing.HoldDistance)
	assert.Equal(t, 0.4, Landing.StoreDistance)
	assert.Equal(t, 0.25, Landing.LandCurveWeight)
	assert.Equal(t, 0.0, Landing.HeadingOffset)
	assert.Equal(t, 2.0, Collision.AvoidanceFactor)

	assert.Equal(t, 0.95, Landing.VelocityDecay)
	assert.Equal(t, 30.0, Landing.StoreOpacity)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	t.Cleanup(resetAll)

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, 10, Carrier.FighterCapacity)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(resetAll)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestReset(t *testing.T) {
	t.Cleanup(resetAll)

	Carrier.FighterCapacity = 1
	Reset()
	assert.Equal(t, 10, Carrier.FighterCapacity)
}
