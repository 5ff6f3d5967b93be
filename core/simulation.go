package core

import (
	"sync"

	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/automoto/starcarrier/shared/scenario"
	"github.com/automoto/starcarrier/systems"
	"github.com/automoto/starcarrier/systems/factory"
	"github.com/automoto/starcarrier/units"
	"github.com/automoto/starcarrier/visibility"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// Simulation owns the world and runs the ordered systems once per Step.
type Simulation struct {
	world    donburi.World
	bus      *events.Bus
	logger   zerolog.Logger
	scenario *scenario.Scenario

	// worldMu serializes Step against readers on other goroutines.
	worldMu sync.RWMutex

	// pending commands, drained at the start of each Step
	mu      sync.Mutex
	pending []Command
}

// NewSimulation builds a world from a scenario. A nil bus gets a fresh one.
func NewSimulation(sc *scenario.Scenario, bus *events.Bus, logger zerolog.Logger) *Simulation {
	if bus == nil {
		bus = events.NewBus()
	}
	s := &Simulation{
		world:    donburi.NewWorld(),
		bus:      bus,
		logger:   logger,
		scenario: sc,
	}

	cell := config.Collision.CellSize
	factory.CreateSpace(s.world, sc.MapWidth, sc.MapHeight, cell, cell)
	grid := visibility.NewGrid(sc.MapWidth, sc.MapHeight, config.Visibility.CellSize)
	factory.CreateSim(s.world, bus, config.Simulation.Seed, grid)

	for _, c := range sc.Carriers {
		factory.CreateCarrier(s.world, gamemath.Vec(c.X, c.Y), c.Rotation, c.Fighters)
	}
	for _, u := range sc.Units {
		factory.CreateUnit(s.world, units.Friendly, gamemath.Vec(u.X, u.Y), config.Unit)
	}
	for _, f := range sc.Fighters {
		factory.CreateFighter(s.world, gamemath.Vec(f.X, f.Y))
	}
	for _, e := range sc.Enemies {
		factory.CreateEnemy(s.world, gamemath.Vec(e.X, e.Y))
	}

	// Seed the fog before the first targeting pass.
	systems.UpdateVisibility(s.world)

	s.logger.Info().
		Str("scenario", sc.Name).
		Int("width", sc.MapWidth).
		Int("height", sc.MapHeight).
		Int("carriers", len(sc.Carriers)).
		Int("enemies", len(sc.Enemies)).
		Msg("simulation created")

	return s
}

// Enqueue buffers a command for the next Step. Safe for concurrent use.
func (s *Simulation) Enqueue(cmd Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float64) {
	s.worldMu.Lock()
	defer s.worldMu.Unlock()

	s.processCommands()

	w := s.world
	systems.UpdateCarrierOps(w, dt)
	systems.UpdateLandingQueues(w)
	systems.UpdateTargeting(w)
	systems.UpdateAvoidance(w)
	systems.UpdateUnits(w, dt)
	systems.UpdateCollisions(w)
	systems.UpdateProximity(w)
	systems.UpdateVisibility(w)
	systems.UpdateDeaths(w)
	systems.UpdateEffects(w, dt)

	if e, ok := components.Sim.First(w); ok {
		sim := components.Sim.Get(e)
		sim.Tick++
		sim.Elapsed += dt
	}
}

// Advance runs fixed steps of dt until seconds of simulated time have
// passed, without waiting on a wall clock. It returns the number of steps.
func (s *Simulation) Advance(seconds, dt float64) int {
	if dt <= 0 {
		return 0
	}
	n := 0
	for elapsed := 0.0; elapsed+dt <= seconds+gamemath.Epsilon; elapsed += dt {
		s.Step(dt)
		n++
	}
	return n
}

func (s *Simulation) processCommands() {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		if !cmd.Apply(s) {
			s.logger.Debug().Str("command", cmd.Name()).Msg("command refused")
		}
	}
}

// World returns the ECS world. Only safe to use between Steps.
func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) Bus() *events.Bus {
	return s.bus
}

func (s *Simulation) Scenario() *scenario.Scenario {
	return s.scenario
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()
	if e, ok := components.Sim.First(s.world); ok {
		return components.Sim.Get(e).Tick
	}
	return 0
}

// Elapsed returns the simulated seconds so far.
func (s *Simulation) Elapsed() float64 {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()
	if e, ok := components.Sim.First(s.world); ok {
		return components.Sim.Get(e).Elapsed
	}
	return 0
}

// Snapshots returns a read-only view of every unit in the world.
func (s *Simulation) Snapshots() []units.Snapshot {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()

	var out []units.Snapshot
	components.Unit.Each(s.world, func(e *donburi.Entry) {
		if e.HasComponent(components.Fighter) {
			out = append(out, components.Fighter.Get(e).Snapshot())
			return
		}
		out = append(out, components.Unit.Get(e).Snapshot())
	})
	return out
}

// CarrierStatuses returns the flight-deck status of every carrier.
func (s *Simulation) CarrierStatuses() []units.CarrierStatus {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()

	var out []units.CarrierStatus
	components.Carrier.Each(s.world, func(e *donburi.Entry) {
		out = append(out, components.Carrier.Get(e).Status())
	})
	return out
}

// Effects returns the live transient effects.
func (s *Simulation) Effects() []events.Effect {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()
	return systems.ActiveEffects(s.world)
}

// ActiveCounts returns the number of live units per faction.
func (s *Simulation) ActiveCounts() map[units.Faction]int {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()

	counts := make(map[units.Faction]int)
	components.Unit.Each(s.world, func(e *donburi.Entry) {
		if u := components.Unit.Get(e).Unit; u.Alive() {
			counts[u.Faction]++
		}
	})
	return counts
}

// Carriers returns the carriers in the world. Only safe between Steps.
func (s *Simulation) Carriers() []*units.Carrier {
	var out []*units.Carrier
	components.Carrier.Each(s.world, func(e *donburi.Entry) {
		out = append(out, components.Carrier.Get(e).Carrier)
	})
	return out
}

// Fighters returns the airborne fighters. Only safe between Steps.
func (s *Simulation) Fighters() []*units.Fighter {
	var out []*units.Fighter
	components.Fighter.Each(s.world, func(e *donburi.Entry) {
		out = append(out, components.Fighter.Get(e).Fighter)
	})
	return out
}

// Units returns every unit of the given faction. Only safe between Steps.
func (s *Simulation) Units(faction units.Faction) []*units.Unit {
	var out []*units.Unit
	components.Unit.Each(s.world, func(e *donburi.Entry) {
		if u := components.Unit.Get(e).Unit; u.Faction == faction {
			out = append(out, u)
		}
	})
	return out
}

// entryByID finds a unit entity by its ID.
func (s *Simulation) entryByID(id uuid.UUID) *donburi.Entry {
	var found *donburi.Entry
	components.Unit.Each(s.world, func(e *donburi.Entry) {
		if found == nil && components.Unit.Get(e).ID == id {
			found = e
		}
	})
	return found
}
