package events

import (
	"sync"

	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/google/uuid"
)

// Kind classifies a simulation Event.
type Kind int

const (
	FighterLaunched Kind = iota
	LaunchQueued
	LandingQueued
	LandingStageChanged
	LandingComplete
	LandingAborted
	LandingDiscarded
	UnitDestroyed
	CollisionsResolved
	InvariantClamped
)

func (k Kind) String() string {
	switch k {
	case FighterLaunched:
		return "fighter_launched"
	case LaunchQueued:
		return "launch_queued"
	case LandingQueued:
		return "landing_queued"
	case LandingStageChanged:
		return "landing_stage_changed"
	case LandingComplete:
		return "landing_complete"
	case LandingAborted:
		return "landing_aborted"
	case LandingDiscarded:
		return "landing_discarded"
	case UnitDestroyed:
		return "unit_destroyed"
	case CollisionsResolved:
		return "collisions_resolved"
	case InvariantClamped:
		return "invariant_clamped"
	}
	return "unknown"
}

// Event is a plain value describing something the host may want to log or
// count. Fields not relevant to a Kind are left zero.
type Event struct {
	Kind      Kind
	UnitID    uuid.UUID
	CarrierID uuid.UUID
	Faction   string
	Stage     string
	Reason    string
	Count     int
	Pos       gamemath.Vector
}

// Handler receives published events.
type Handler func(Event)

// Bus is a synchronous fan-out of events to subscribers. A nil *Bus
// discards everything.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for every subsequent event.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers e to every subscriber in registration order.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}
