package units

import (
	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LandingStage is one phase of a fighter's return to its carrier.
type LandingStage int

const (
	StageIdle LandingStage = iota
	StageApproach
	StageAlign
	StageLand
	StageStore
)

func (s LandingStage) String() string {
	switch s {
	case StageApproach:
		return "approach"
	case StageAlign:
		return "align"
	case StageLand:
		return "land"
	case StageStore:
		return "store"
	}
	return "idle"
}

// Fighter is a small friendly unit that launches from and lands on a
// Carrier.
type Fighter struct {
	Unit

	TargetCarrier        *Carrier // non-owning; set only while returning
	IsReturningToCarrier bool
	LandingStage         LandingStage
	LandingTimer         float64 // seconds spent in the current stage
	LandingComplete      bool    // stored; the world should drop this fighter

	Patrolling  bool
	PatrolPoint gamemath.Vector
	PatrolTimer float64

	alignHold  float64
	stageStart float64 // distance to the stage goal when the stage began
	fade       *gween.Tween
}

// NewFighter creates a fighter with the configured fighter stats.
func NewFighter(pos gamemath.Vector) *Fighter {
	f := &Fighter{}
	f.setup(KindFighter, Friendly, pos, config.Fighter.Stats)
	return f
}

// IsLanding reports whether the fighter is in a landing sequence.
func (f *Fighter) IsLanding() bool {
	return f.IsReturningToCarrier && f.TargetCarrier != nil && f.LandingStage != StageIdle
}

// Update runs the landing stages while returning, otherwise the normal unit
// state machine plus patrol bookkeeping.
func (f *Fighter) Update(dt float64) []events.Effect {
	if !f.Alive() {
		return nil
	}
	f.updateFade(dt)

	if f.IsLanding() {
		f.updateLanding(dt)
		return nil
	}

	if f.Patrolling {
		f.PatrolTimer -= dt
		if f.PatrolTimer <= 0 {
			f.endPatrol()
		}
	}

	fx := f.Unit.Update(dt)

	if f.Patrolling && f.State != StateMoving {
		f.endPatrol()
	}
	return fx
}

// MoveToPoint orders a move and cancels any patrol.
func (f *Fighter) MoveToPoint(x, y float64) {
	if f.IsLanding() {
		return
	}
	f.Patrolling = false
	f.Unit.MoveToPoint(x, y)
}

// Attack orders an attack and cancels any patrol. Landing fighters ignore
// combat orders.
func (f *Fighter) Attack(target *Unit) bool {
	if f.IsLanding() {
		return false
	}
	if !f.Unit.Attack(target) {
		return false
	}
	f.Patrolling = false
	return true
}

// launch prepares a fighter leaving the deck at pos on heading rotation.
func (f *Fighter) launch(pos, vel gamemath.Vector, rotation float64) {
	f.Pos = pos
	f.Vel = vel
	f.Rotation = gamemath.NormalizeAngle(rotation)
	f.LandingComplete = false
	f.IsReturningToCarrier = false
	f.TargetCarrier = nil
	f.LandingStage = StageIdle
	f.CollisionEnabled = true

	f.PatrolPoint = pos.Add(gamemath.Forward(rotation).Scale(config.Fighter.PatrolDistance))
	f.PatrolTimer = config.Fighter.PatrolDuration
	f.Patrolling = true
	f.Target = &Target{Point: f.PatrolPoint}
	f.State = StateMoving

	f.Opacity = 0
	f.fade = gween.New(0, 255, float32(config.Fighter.LaunchFadeDuration), ease.OutQuad)
}

func (f *Fighter) endPatrol() {
	f.Patrolling = false
	if f.State == StateMoving && f.Target != nil && f.Target.Unit == nil {
		f.Stop()
	}
}

func (f *Fighter) updateFade(dt float64) {
	if f.fade == nil {
		return
	}
	v, done := f.fade.Update(float32(dt))
	f.Opacity = gamemath.Clamp(float64(v), 0, 255)
	if done {
		f.Opacity = 255
		f.fade = nil
	}
}
