package units

import (
	"math"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// beginLanding puts the fighter on the approach to c.
func (f *Fighter) beginLanding(c *Carrier) {
	f.TargetCarrier = c
	f.IsReturningToCarrier = true
	f.LandingComplete = false
	f.Patrolling = false
	f.fade = nil
	f.Opacity = 255
	f.CollisionEnabled = true
	f.Target = nil
	f.Detour = nil
	f.SetState(StateMoving)
	f.enterStage(StageApproach)
}

func (f *Fighter) enterStage(s LandingStage) {
	f.LandingStage = s
	f.LandingTimer = 0
	f.alignHold = 0

	if c := f.TargetCarrier; c != nil {
		switch s {
		case StageApproach:
			f.stageStart = f.Pos.DistanceTo(approachWaypoint(c))
		case StageLand:
			f.stageStart = f.Pos.DistanceTo(c.Pos)
		}
		f.publish(events.Event{Kind: events.LandingStageChanged, CarrierID: c.ID, Stage: s.String()})
	}
}

func approachWaypoint(c *Carrier) gamemath.Vector {
	return c.Pos.Sub(gamemath.Forward(c.Rotation).Scale(config.Landing.ApproachDistance * c.Radius))
}

func holdPoint(c *Carrier) gamemath.Vector {
	return c.Pos.Sub(gamemath.Forward(c.Rotation).Scale(config.Landing.HoldDistance * c.Radius))
}

func landingHeading(c *Carrier) float64 {
	return gamemath.NormalizeAngle(c.Rotation + config.Landing.HeadingOffset)
}

func easeIn(t float64) float64 {
	return float64(ease.InQuad(float32(gamemath.Clamp(t, 0, 1)), 0, 1, 1))
}

func easeOut(t float64) float64 {
	return float64(ease.OutQuad(float32(gamemath.Clamp(t, 0, 1)), 0, 1, 1))
}

func (f *Fighter) updateLanding(dt float64) {
	c := f.TargetCarrier
	if !c.Alive() {
		f.AbortLanding("carrier lost")
		return
	}

	f.LandingTimer += dt
	if f.LandingTimer > config.Landing.Timeout {
		f.AbortLanding("timeout")
		return
	}

	switch f.LandingStage {
	case StageApproach:
		f.updateApproach(c, dt)
	case StageAlign:
		f.updateAlign(c, dt)
	case StageLand:
		f.updateLand(c, dt)
	case StageStore:
		f.updateStore(c)
	}
}

func (f *Fighter) updateApproach(c *Carrier, dt float64) {
	cfg := config.Landing
	waypoint := approachWaypoint(c)

	goal := waypoint
	if detour, ok := avoidPoint(f.Pos, waypoint, &c.Unit); ok {
		goal = detour
	}

	dist := f.Pos.DistanceTo(waypoint)
	if dist > f.stageStart {
		f.stageStart = dist
	}
	closing := 0.0
	if f.stageStart > gamemath.Epsilon {
		closing = 1 - dist/f.stageStart
	}
	speed := f.MaxSpeed * (cfg.ApproachMinSpeedFactor + (1-cfg.ApproachMinSpeedFactor)*easeIn(closing))

	f.Rotation = gamemath.TurnToward(f.Rotation, landingHeading(c), f.MaxRotationSpeed*cfg.ApproachTurnMultiplier*dt)

	f.Vel = gamemath.CalculateHomingVelocity(f.Pos.X, f.Pos.Y, goal.X, goal.Y, speed)
	if speed*dt >= f.Pos.DistanceTo(goal) {
		f.Pos = goal
	} else {
		f.Pos = f.Pos.Add(f.Vel.Scale(dt))
	}

	if f.Pos.DistanceTo(waypoint) <= cfg.AlignWaypointRadii*f.Radius ||
		f.Pos.DistanceTo(c.Pos) <= cfg.AlignCarrierRadii*c.Radius {
		f.enterStage(StageAlign)
	}
}

func (f *Fighter) updateAlign(c *Carrier, dt float64) {
	cfg := config.Landing
	hold := holdPoint(c)
	goal := hold
	if detour, ok := avoidPoint(f.Pos, hold, &c.Unit); ok {
		goal = detour
	}
	f.Pos = f.Pos.Lerp(goal, cfg.HoldCorrection)
	f.Vel = f.Vel.Scale(cfg.VelocityDecay)

	heading := landingHeading(c)
	errDeg := math.Abs(gamemath.AngleDiff(f.Rotation, heading))
	rate := f.MaxRotationSpeed * cfg.ApproachTurnMultiplier * (1 + easeOut(1-errDeg/180))
	f.Rotation = gamemath.TurnToward(f.Rotation, heading, rate*dt)

	if math.Abs(gamemath.AngleDiff(f.Rotation, heading)) < cfg.AlignTolerance {
		f.alignHold += dt
	} else {
		f.alignHold = 0
	}
	if f.alignHold >= cfg.AlignHold-1e-9 {
		f.CollisionEnabled = false
		f.enterStage(StageLand)
	}
}

func (f *Fighter) updateLand(c *Carrier, dt float64) {
	cfg := config.Landing
	f.CollisionEnabled = false

	toCarrier := c.Pos.Sub(f.Pos)
	dist := toCarrier.Len()
	if dist > f.stageStart {
		f.stageStart = dist
	}
	remaining := 0.0
	if f.stageStart > gamemath.Epsilon {
		remaining = dist / f.stageStart
	}

	// Curve in along the deck: the further out, the more the path follows
	// the carrier heading instead of diving at its center.
	w := cfg.LandCurveWeight * remaining
	dir := toCarrier.Normalized().Scale(1 - w).Add(gamemath.Forward(c.Rotation).Scale(w)).Normalized()
	speed := f.MaxSpeed * (cfg.LandMinSpeedFactor + (1-cfg.LandMinSpeedFactor)*easeOut(remaining))
	step := math.Min(speed*dt, dist)

	f.Pos = f.Pos.Add(dir.Scale(step)).Add(c.Vel.Scale(dt))
	f.Vel = dir.Scale(speed).Add(c.Vel)
	f.Rotation = gamemath.TurnToward(f.Rotation, landingHeading(c), f.MaxRotationSpeed*dt)
	f.Opacity = 255 * (1 - easeIn(1-remaining))

	if f.Pos.DistanceTo(c.Pos) < cfg.StoreDistance*c.Radius || f.Opacity <= cfg.StoreOpacity {
		f.enterStage(StageStore)
	}
}

func (f *Fighter) updateStore(c *Carrier) {
	f.CollisionEnabled = false
	f.Opacity = 0
	if !c.StoreFighter(f) {
		away := c.Pos.Sub(gamemath.Forward(c.Rotation).Scale(config.Landing.AbortClearance*c.Radius + f.Radius))
		f.AbortLanding("carrier full")
		f.Unit.MoveToPoint(away.X, away.Y)
		return
	}

	f.IsReturningToCarrier = false
	f.TargetCarrier = nil
	f.LandingStage = StageIdle
	f.LandingTimer = 0
	f.LandingComplete = true
	f.Vel = gamemath.Vector{}
	f.Pos = c.Pos
	f.Stop()
	f.publish(events.Event{Kind: events.LandingComplete, CarrierID: c.ID, Stage: StageStore.String()})
}

// AbortLanding cancels an in-progress landing and returns the fighter to
// free, visible, collidable flight. It is the only rollback the landing
// sequence has.
func (f *Fighter) AbortLanding(reason string) {
	c := f.TargetCarrier
	stage := f.LandingStage
	if c != nil {
		c.CancelLanding(f)
	}

	f.IsReturningToCarrier = false
	f.TargetCarrier = nil
	f.LandingStage = StageIdle
	f.LandingTimer = 0
	f.alignHold = 0
	f.CollisionEnabled = true
	f.Opacity = 255
	f.Stop()

	e := events.Event{Kind: events.LandingAborted, Stage: stage.String(), Reason: reason}
	if c != nil {
		e.CarrierID = c.ID
	}
	f.publish(e)
}
