package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/core"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/scenario"
	"github.com/automoto/starcarrier/targeting"
	"github.com/automoto/starcarrier/telemetry"
	"github.com/automoto/starcarrier/units"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "Directory holding "+config.FileName)
	scenarioName := flag.String("scenario", "", "Scenario name in -scenarios, or a .tmx path (empty = built-in skirmish)")
	scenarioDir := flag.String("scenarios", "scenarios", "Directory of .tmx scenarios")
	sortie := flag.Float64("duration", 20, "Seconds to simulate after launching every fighter")
	recovery := flag.Float64("recovery", 60, "Seconds to simulate after recalling fighters")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = from config)")
	logLevel := flag.String("loglevel", "", "Log level (empty = from config)")
	realtime := flag.Bool("realtime", false, "Pace ticks to the wall clock")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		config.Simulation.LogLevel = *logLevel
	}
	if *tickRate > 0 {
		config.Simulation.TickRate = *tickRate
	}

	logger := telemetry.NewLogger(config.Simulation.LogLevel, os.Stdout)

	sc, err := loadScenario(*scenarioName, *scenarioDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load scenario")
	}

	bus := events.NewBus()
	sim := core.NewSimulation(sc, bus, logger)
	telemetry.AttachEventLogger(bus, logger)

	metrics, err := telemetry.NewMetrics(func() map[string]int {
		out := make(map[string]int)
		for faction, n := range sim.ActiveCounts() {
			out[faction.String()] = n
		}
		return out
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up metrics")
	}
	metrics.Attach(bus)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, c := range sim.Carriers() {
		sim.Enqueue(core.LaunchAll{Carrier: c.ID})
	}
	logger.Info().Float64("seconds", *sortie).Msg("Launching all fighters")
	run(ctx, sim, *sortie, *realtime, logger)

	recalled := recall(sim)
	logger.Info().Int("fighters", recalled).Float64("seconds", *recovery).Msg("Recalling fighters")
	run(ctx, sim, *recovery, *realtime, logger)

	summarize(sim, logger)
}

func loadScenario(name, dir string) (*scenario.Scenario, error) {
	fighters := config.Carrier.InitialFighters
	switch {
	case name == "":
		return scenario.Default(fighters), nil
	case strings.HasSuffix(name, ".tmx"):
		return scenario.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name), fighters)
	}

	all, names, err := scenario.LoadAll(os.DirFS(dir), ".", fighters)
	if err != nil {
		return nil, err
	}
	sc, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q (have %s)", name, strings.Join(names, ", "))
	}
	return sc, nil
}

// run steps the simulation for seconds of simulated time, either as fast
// as possible or paced by a GameLoop. It returns early on ctx cancel.
func run(ctx context.Context, sim *core.Simulation, seconds float64, realtime bool, logger zerolog.Logger) {
	if ctx.Err() != nil || seconds <= 0 {
		return
	}

	if !realtime {
		dt := 1.0 / float64(config.Simulation.TickRate)
		for elapsed := 0.0; elapsed < seconds && ctx.Err() == nil; elapsed += dt {
			sim.Step(dt)
		}
		return
	}

	loop := core.NewGameLoop(sim, config.Simulation.TickRate, logger)
	timer := time.AfterFunc(time.Duration(seconds*float64(time.Second)), loop.Stop)
	defer timer.Stop()
	cancel := context.AfterFunc(ctx, loop.Stop)
	defer cancel()

	loop.Run()
}

// recall queues every airborne fighter on the nearest live carrier and
// returns how many requests were issued.
func recall(sim *core.Simulation) int {
	carriers := make(map[*units.Unit]*units.Carrier)
	var decks []*units.Unit
	for _, c := range sim.Carriers() {
		if c.Alive() {
			carriers[&c.Unit] = c
			decks = append(decks, &c.Unit)
		}
	}

	n := 0
	for _, f := range sim.Fighters() {
		if !f.Alive() || f.IsLanding() {
			continue
		}
		deck := targeting.ClosestToPoint(f.Pos, decks)
		if deck == nil {
			break
		}
		sim.Enqueue(core.QueueLanding{Carrier: carriers[deck].ID, Fighter: f.ID})
		n++
	}
	return n
}

func summarize(sim *core.Simulation, logger zerolog.Logger) {
	for _, st := range sim.CarrierStatuses() {
		logger.Info().
			Str("carrier", st.ID.String()).
			Int("stored", st.StoredFighters).
			Int("capacity", st.FighterCapacity).
			Int("landing_queue", st.LandingQueueLen).
			Int("launch_queue", st.LaunchQueueLen).
			Bool("restricted", st.MovementRestricted).
			Msg("Carrier status")
	}

	counts := sim.ActiveCounts()
	logger.Info().
		Uint64("ticks", sim.Tick()).
		Float64("elapsed", sim.Elapsed()).
		Int("friendly", counts[units.Friendly]).
		Int("enemy", counts[units.Enemy]).
		Int("airborne", len(sim.Fighters())).
		Msg("Simulation finished")
}
