package core

import (
	"github.com/automoto/starcarrier/components"
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/automoto/starcarrier/systems/factory"
	"github.com/google/uuid"
)

// Command is an order issued from outside the tick. Units are named by ID
// so commands can be built on any goroutine. Apply runs inside Step and
// reports whether the order was accepted.
type Command interface {
	Name() string
	Apply(s *Simulation) bool
}

// MoveTo sends a unit to a world point.
type MoveTo struct {
	Unit uuid.UUID
	X, Y float64
}

func (MoveTo) Name() string { return "move_to" }

func (c MoveTo) Apply(s *Simulation) bool {
	e := s.entryByID(c.Unit)
	if e == nil {
		return false
	}
	u := components.Unit.Get(e).Unit
	if !u.Alive() {
		return false
	}

	switch {
	case e.HasComponent(components.Carrier):
		if !components.Carrier.Get(e).MoveToPoint(c.X, c.Y) {
			return false
		}
	case e.HasComponent(components.Fighter):
		f := components.Fighter.Get(e).Fighter
		if f.IsLanding() {
			return false
		}
		f.MoveToPoint(c.X, c.Y)
	default:
		u.MoveToPoint(c.X, c.Y)
	}

	factory.SpawnEffect(s.world, events.NewDestination(
		gamemath.Vec(c.X, c.Y), config.Destination, u.Radius, config.Combat.DestinationDuration))
	return true
}

// AttackTarget orders a unit to chase and fire on another.
type AttackTarget struct {
	Unit   uuid.UUID
	Target uuid.UUID
}

func (AttackTarget) Name() string { return "attack_target" }

func (c AttackTarget) Apply(s *Simulation) bool {
	e, te := s.entryByID(c.Unit), s.entryByID(c.Target)
	if e == nil || te == nil {
		return false
	}
	target := components.Unit.Get(te).Unit
	if e.HasComponent(components.Fighter) {
		return components.Fighter.Get(e).Attack(target)
	}
	return components.Unit.Get(e).Attack(target)
}

// QueueLaunch adds one launch request to a carrier.
type QueueLaunch struct {
	Carrier uuid.UUID
}

func (QueueLaunch) Name() string { return "queue_launch" }

func (c QueueLaunch) Apply(s *Simulation) bool {
	e := s.entryByID(c.Carrier)
	if e == nil || !e.HasComponent(components.Carrier) {
		return false
	}
	return components.Carrier.Get(e).QueueLaunchRequest()
}

// LaunchAll queues every fighter aboard a carrier.
type LaunchAll struct {
	Carrier uuid.UUID
}

func (LaunchAll) Name() string { return "launch_all" }

func (c LaunchAll) Apply(s *Simulation) bool {
	e := s.entryByID(c.Carrier)
	if e == nil || !e.HasComponent(components.Carrier) {
		return false
	}
	return components.Carrier.Get(e).LaunchAllFighters() > 0
}

// QueueLanding puts an airborne fighter in a carrier's landing queue.
type QueueLanding struct {
	Carrier uuid.UUID
	Fighter uuid.UUID
}

func (QueueLanding) Name() string { return "queue_landing" }

func (c QueueLanding) Apply(s *Simulation) bool {
	ce, fe := s.entryByID(c.Carrier), s.entryByID(c.Fighter)
	if ce == nil || fe == nil || !ce.HasComponent(components.Carrier) || !fe.HasComponent(components.Fighter) {
		return false
	}
	return components.Carrier.Get(ce).QueueLandingRequest(components.Fighter.Get(fe).Fighter)
}

// SetEmergency toggles a carrier's emergency movement override.
type SetEmergency struct {
	Carrier uuid.UUID
	On      bool
}

func (SetEmergency) Name() string { return "set_emergency" }

func (c SetEmergency) Apply(s *Simulation) bool {
	e := s.entryByID(c.Carrier)
	if e == nil || !e.HasComponent(components.Carrier) {
		return false
	}
	components.Carrier.Get(e).SetEmergencyMove(c.On)
	return true
}
