package core

import (
	"sync"
	"testing"
	"time"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/scenario"
	"github.com/automoto/starcarrier/units"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60.0

func carrierOnly(fighters int) *scenario.Scenario {
	return &scenario.Scenario{
		Name:      "test",
		MapWidth:  2000,
		MapHeight: 2000,
		Carriers:  []scenario.CarrierSpawn{{X: 1000, Y: 1000, Fighters: fighters}},
	}
}

func newTestSim(t *testing.T, sc *scenario.Scenario) (*Simulation, *[]events.Event) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	bus := events.NewBus()
	var got []events.Event
	bus.Subscribe(func(e events.Event) { got = append(got, e) })
	return NewSimulation(sc, bus, zerolog.Nop()), &got
}

func countKind(got []events.Event, k events.Kind) int {
	n := 0
	for _, e := range got {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func TestNewSimulation_SpawnsScenario(t *testing.T) {
	sc := scenario.Default(4)
	sim, _ := newTestSim(t, sc)

	require.Len(t, sim.Carriers(), 1)
	assert.Equal(t, 4, sim.Carriers()[0].StoredCount())
	assert.Empty(t, sim.Fighters())
	assert.Len(t, sim.Units(units.Enemy), len(sc.Enemies))
	// carrier plus escorts
	assert.Len(t, sim.Units(units.Friendly), 1+len(sc.Units))

	counts := sim.ActiveCounts()
	assert.Equal(t, len(sc.Enemies), counts[units.Enemy])
	assert.Len(t, sim.Snapshots(), 1+len(sc.Units)+len(sc.Enemies))
	assert.Equal(t, uint64(0), sim.Tick())
}

func TestStep_AdvancesClock(t *testing.T) {
	sim, _ := newTestSim(t, carrierOnly(0))

	n := sim.Advance(1.0, dt)
	assert.Equal(t, 60, n)
	assert.Equal(t, uint64(60), sim.Tick())
	assert.InDelta(t, 1.0, sim.Elapsed(), 1e-9)

	assert.Equal(t, 0, sim.Advance(1.0, 0))
}

func TestLaunchAll_FightersJoinWorld(t *testing.T) {
	sim, got := newTestSim(t, carrierOnly(3))
	c := sim.Carriers()[0]

	sim.Enqueue(LaunchAll{Carrier: c.ID})
	sim.Step(dt)

	require.Len(t, sim.Fighters(), 1, "first launch leaves in the same tick")
	assert.Equal(t, 2, c.StoredCount())
	assert.Len(t, c.LaunchQueue, 2)

	var flares int
	for _, fx := range sim.Effects() {
		if fx.Kind == events.EffectLaunchFlare {
			flares++
		}
	}
	assert.Equal(t, 1, flares)

	sim.Advance(10, dt)

	assert.Len(t, sim.Fighters(), 3)
	assert.Equal(t, 0, c.StoredCount())
	assert.Empty(t, c.LaunchQueue)
	assert.Equal(t, 3, countKind(*got, events.FighterLaunched))

	status := sim.CarrierStatuses()
	require.Len(t, status, 1)
	assert.Equal(t, 0, status[0].StoredFighters)
	assert.False(t, status[0].MovementRestricted)
}

func TestQueueLanding_RoundTrip(t *testing.T) {
	sim, got := newTestSim(t, carrierOnly(1))
	c := sim.Carriers()[0]

	sim.Enqueue(LaunchAll{Carrier: c.ID})
	sim.Advance(3, dt)
	fighters := sim.Fighters()
	require.Len(t, fighters, 1)
	f := fighters[0]

	sim.Enqueue(QueueLanding{Carrier: c.ID, Fighter: f.ID})
	sim.Step(dt)
	require.True(t, f.IsLanding())

	for i := 0; i < 60*60 && len(sim.Fighters()) > 0; i++ {
		sim.Step(dt)
	}

	assert.Empty(t, sim.Fighters(), "stored fighter leaves the world")
	assert.Equal(t, 1, c.StoredCount())
	assert.Same(t, f, c.StoredFighters[0])
	assert.Equal(t, 1, countKind(*got, events.LandingComplete))
	assert.Zero(t, countKind(*got, events.LandingAborted))
}

func TestMoveTo_CarrierRestrictedDuringLaunch(t *testing.T) {
	sim, _ := newTestSim(t, carrierOnly(4))
	c := sim.Carriers()[0]

	sim.Enqueue(LaunchAll{Carrier: c.ID})
	sim.Step(dt)
	require.True(t, c.MovementRestricted)

	assert.False(t, MoveTo{Unit: c.ID, X: 1500, Y: 1000}.Apply(sim))
	assert.Nil(t, c.Target)

	sim.Enqueue(SetEmergency{Carrier: c.ID, On: true})
	sim.Enqueue(MoveTo{Unit: c.ID, X: 1500, Y: 1000})
	sim.Step(dt)

	assert.True(t, c.EmergencyMove)
	assert.Equal(t, units.StateMoving, c.State)

	var destinations int
	for _, fx := range sim.Effects() {
		if fx.Kind == events.EffectDestination {
			destinations++
		}
	}
	assert.Equal(t, 1, destinations)
}

func TestCommands_UnknownIDsRefused(t *testing.T) {
	sim, _ := newTestSim(t, carrierOnly(1))
	c := sim.Carriers()[0]
	missing := uuid.New()

	tests := []struct {
		name string
		cmd  Command
	}{
		{"move", MoveTo{Unit: missing}},
		{"attack", AttackTarget{Unit: c.ID, Target: missing}},
		{"queue launch", QueueLaunch{Carrier: missing}},
		{"launch all", LaunchAll{Carrier: missing}},
		{"landing", QueueLanding{Carrier: c.ID, Fighter: missing}},
		{"landing on a non-carrier", QueueLanding{Carrier: missing, Fighter: c.ID}},
		{"emergency", SetEmergency{Carrier: missing, On: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.cmd.Apply(sim))
			assert.NotEmpty(t, tt.cmd.Name())
		})
	}
}

func TestQueueLaunch_OnePerCommand(t *testing.T) {
	sim, _ := newTestSim(t, carrierOnly(2))
	c := sim.Carriers()[0]

	assert.True(t, QueueLaunch{Carrier: c.ID}.Apply(sim))
	assert.True(t, QueueLaunch{Carrier: c.ID}.Apply(sim))
	assert.False(t, QueueLaunch{Carrier: c.ID}.Apply(sim), "bounded by fighters aboard")
}

func TestCombat_DestroyedUnitsArePruned(t *testing.T) {
	sc := &scenario.Scenario{
		Name:      "duel",
		MapWidth:  1000,
		MapHeight: 1000,
		Units:     []scenario.Spawn{{X: 400, Y: 500}},
		Enemies:   []scenario.Spawn{{X: 480, Y: 500}},
	}
	sim, got := newTestSim(t, sc)

	for i := 0; i < 60*60 && countKind(*got, events.UnitDestroyed) == 0; i++ {
		sim.Step(dt)
	}
	sim.Step(dt)

	require.GreaterOrEqual(t, countKind(*got, events.UnitDestroyed), 1)
	for _, s := range sim.Snapshots() {
		assert.NotEqual(t, units.StateDestroyed, s.State)
	}
	assert.Less(t, len(sim.Snapshots()), 2)
}

func TestAttackTarget_Command(t *testing.T) {
	sc := &scenario.Scenario{
		Name:      "order",
		MapWidth:  1000,
		MapHeight: 1000,
		Units:     []scenario.Spawn{{X: 100, Y: 100}},
		Enemies:   []scenario.Spawn{{X: 900, Y: 900}},
	}
	sim, _ := newTestSim(t, sc)
	u := sim.Units(units.Friendly)[0]
	e := sim.Units(units.Enemy)[0]

	assert.True(t, AttackTarget{Unit: u.ID, Target: e.ID}.Apply(sim))
	require.NotNil(t, u.Target)
	assert.Same(t, e, u.Target.Unit)
	assert.False(t, AttackTarget{Unit: u.ID, Target: u.ID}.Apply(sim))
}

func TestEnqueue_ConcurrentCallers(t *testing.T) {
	sim, _ := newTestSim(t, carrierOnly(8))
	c := sim.Carriers()[0]

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sim.Enqueue(QueueLaunch{Carrier: c.ID})
		}()
	}
	wg.Wait()
	sim.Step(dt)

	// One fighter left this tick, the rest are still queued.
	assert.Equal(t, 7, c.StoredCount())
	assert.Len(t, c.LaunchQueue, 7)
}

func TestGameLoop_RunAndStop(t *testing.T) {
	sim, _ := newTestSim(t, carrierOnly(0))
	loop := NewGameLoop(sim, 200, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	require.Eventually(t, func() bool { return sim.Tick() >= 5 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, loop.Running())

	loop.Stop()
	loop.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.False(t, loop.Running())
}
