package core

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// GameLoop steps a Simulation from a wall-clock ticker.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	logger   zerolog.Logger
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(sim *Simulation, tickRate int, logger zerolog.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info().Int("tick_rate", g.tickRate).Msg("game loop started")

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			g.logger.Info().Uint64("tick", g.sim.Tick()).Msg("game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. Calling it more than once is harmless.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) tick() {
	g.sim.Step(1.0 / float64(g.tickRate))
}
