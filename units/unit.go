// Package units implements the simulation entities: the base Unit with its
// movement and combat state machine, and the Fighter and Carrier
// specializations with their flight-deck operations.
package units

import (
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/google/uuid"
)

// Kind replaces type checks on the concrete unit class.
type Kind int

const (
	KindUnit Kind = iota
	KindFighter
	KindCarrier
)

func (k Kind) String() string {
	switch k {
	case KindFighter:
		return "fighter"
	case KindCarrier:
		return "carrier"
	}
	return "unit"
}

type Faction int

const (
	Friendly Faction = iota
	Enemy
)

func (f Faction) String() string {
	if f == Enemy {
		return "enemy"
	}
	return "friendly"
}

// Opponent returns the faction this one fights.
func (f Faction) Opponent() Faction {
	if f == Enemy {
		return Friendly
	}
	return Enemy
}

type State int

const (
	StateIdle State = iota
	StateMoving
	StateAttacking
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateMoving:
		return "moving"
	case StateAttacking:
		return "attacking"
	case StateDestroyed:
		return "destroyed"
	}
	return "idle"
}

// Target is a move destination: a world point, or another unit when Unit
// is set.
type Target struct {
	Point gamemath.Vector
	Unit  *Unit
}

// Position returns where the target currently is.
func (t *Target) Position() gamemath.Vector {
	if t.Unit != nil {
		return t.Unit.Pos
	}
	return t.Point
}

// Actor is anything the simulation ticks.
type Actor interface {
	Base() *Unit
	Update(dt float64) []events.Effect
}

// Unit is the base movable, fightable, damageable entity.
type Unit struct {
	ID      uuid.UUID // log correlation only; identity is the pointer
	Kind    Kind
	Faction Faction

	Pos      gamemath.Vector
	Vel      gamemath.Vector
	Rotation float64 // degrees, [0,360)

	HP     int
	HPMax  int
	Radius float64
	Mass   float64

	AttackRange           float64
	AttackPower           int
	AttackCooldown        float64
	CurrentAttackCooldown float64

	MaxSpeed         float64
	Acceleration     float64
	MaxRotationSpeed float64
	VisionRadius     float64

	State  State
	Target *Target

	// Detour is a one-tick waypoint that steers a point move around an
	// obstacle without replacing Target. Update consumes it.
	Detour *gamemath.Vector

	CollisionEnabled bool
	Opacity          float64 // 0-255
	Selected         bool
	TrailReset       bool // set on leaving moving; the render layer clears its trail

	Bus *events.Bus
}

// New creates a plain combat unit from stats.
func New(faction Faction, pos gamemath.Vector, stats config.UnitConfig) *Unit {
	u := &Unit{}
	u.setup(KindUnit, faction, pos, stats)
	return u
}

func (u *Unit) setup(kind Kind, faction Faction, pos gamemath.Vector, stats config.UnitConfig) {
	mass := stats.Mass
	if mass <= 0 {
		mass = 1.0
	}
	*u = Unit{
		ID:               uuid.New(),
		Kind:             kind,
		Faction:          faction,
		Pos:              pos,
		HP:               stats.HP,
		HPMax:            stats.HP,
		Radius:           stats.Radius,
		Mass:             mass,
		AttackRange:      stats.AttackRange,
		AttackPower:      stats.AttackPower,
		AttackCooldown:   stats.AttackCooldown,
		MaxSpeed:         stats.MaxSpeed,
		Acceleration:     stats.Acceleration,
		MaxRotationSpeed: stats.MaxRotationSpeed,
		VisionRadius:     stats.VisionRadius,
		State:            StateIdle,
		CollisionEnabled: true,
		Opacity:          255,
	}
}

func (u *Unit) Base() *Unit { return u }

// Alive reports whether the unit still participates in the simulation.
func (u *Unit) Alive() bool {
	return u != nil && u.State != StateDestroyed && u.HP > 0
}

// SetState is the only writer of State. Destroyed is terminal.
func (u *Unit) SetState(s State) {
	if u.State == s || u.State == StateDestroyed {
		return
	}
	if u.State == StateMoving {
		u.TrailReset = true
	}
	u.State = s
}

// MoveToPoint orders a move to a world point.
func (u *Unit) MoveToPoint(x, y float64) {
	if !u.Alive() {
		return
	}
	u.Target = &Target{Point: gamemath.Vec(x, y)}
	u.SetState(StateMoving)
}

// Attack orders the unit to chase and fight target. Dead targets and the
// unit itself are refused.
func (u *Unit) Attack(target *Unit) bool {
	if !u.Alive() || !target.Alive() || target == u {
		return false
	}
	u.Target = &Target{Unit: target}
	u.SetState(StateMoving)
	return true
}

// Stop clears the order and leaves the unit idle.
func (u *Unit) Stop() {
	u.Target = nil
	u.SetState(StateIdle)
}

// TakeDamage reduces hp, flooring at zero. Reaching zero destroys the unit
// immediately.
func (u *Unit) TakeDamage(amount int) {
	if !u.Alive() || amount <= 0 {
		return
	}
	u.HP -= amount
	if u.HP <= 0 {
		u.HP = 0
		u.destroy()
	}
}

func (u *Unit) destroy() {
	u.SetState(StateDestroyed)
	u.Target = nil
	u.Detour = nil
	u.Vel = gamemath.Vector{}
	u.publish(events.Event{Kind: events.UnitDestroyed})
}

// Update advances the movement and combat state machine by dt seconds.
func (u *Unit) Update(dt float64) []events.Effect {
	if !u.Alive() {
		return nil
	}
	if u.CurrentAttackCooldown > 0 && u.State != StateAttacking {
		u.CurrentAttackCooldown -= dt
		if u.CurrentAttackCooldown < 0 {
			u.CurrentAttackCooldown = 0
		}
	}

	switch u.State {
	case StateMoving:
		u.updateMoving(dt)
	case StateAttacking:
		return u.updateAttack(dt)
	default:
		u.coast(dt)
	}
	return nil
}

func (u *Unit) updateMoving(dt float64) {
	detour := u.Detour
	u.Detour = nil

	if u.Target == nil {
		u.SetState(StateIdle)
		return
	}

	if t := u.Target.Unit; t != nil {
		if !t.Alive() {
			u.Stop()
			return
		}
		dist := u.Pos.DistanceTo(t.Pos)
		if dist < u.AttackRange-config.Combat.ChaseArrivalMargin {
			u.SetState(StateAttacking)
			return
		}
		Advance(u, t.Pos.X, t.Pos.Y, dt)
		return
	}

	dest := u.Target.Point
	if u.Pos.DistanceTo(dest) < config.Combat.ArrivalThreshold {
		u.Pos = dest
		u.Vel = gamemath.Vector{}
		u.Stop()
		return
	}
	if detour != nil {
		dest = *detour
	}
	Advance(u, dest.X, dest.Y, dt)
}

// coast bleeds off leftover momentum while idle.
func (u *Unit) coast(dt float64) {
	if u.Vel.Len() < gamemath.Epsilon {
		return
	}
	u.Vel = u.Vel.Scale(gamemath.Damping(dt, 0))
	u.Pos = u.Pos.Add(u.Vel.Scale(dt))
}

func (u *Unit) publish(e events.Event) {
	if u.Bus == nil {
		return
	}
	if e.UnitID == uuid.Nil {
		e.UnitID = u.ID
	}
	if e.Faction == "" {
		e.Faction = u.Faction.String()
	}
	if e.Pos == (gamemath.Vector{}) {
		e.Pos = u.Pos
	}
	u.Bus.Publish(e)
}
