package units

import (
	"slices"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
)

// LaunchRequest is an opaque launch-queue token.
type LaunchRequest struct {
	seq int
}

// Carrier is a heavy friendly unit that stores, launches and recovers
// fighters. Its queues and cooldowns are the only path into and out of
// StoredFighters.
type Carrier struct {
	Unit

	FighterCapacity int
	StoredFighters  []*Fighter // owned while stored
	LaunchQueue     []LaunchRequest
	LandingQueue    []*Fighter

	LaunchCooldown         float64
	CurrentLaunchCooldown  float64
	LandingCooldown        float64
	CurrentLandingCooldown float64

	IsLaunching             bool
	IsLaunchSequenceActive  bool
	IsLandingSequenceActive bool

	IsAnimatingLaunch     bool
	AnimationFrame        float64
	LaunchAnimationFrames float64
	AnimationSpeed        float64

	MovementRestricted       bool
	RotationRestricted       bool
	RestrictionReason        string
	EmergencyMove            bool
	OriginalMaxSpeed         float64
	OriginalMaxRotationSpeed float64

	LaunchPoints      []gamemath.Vector // relative to the carrier, unrotated
	ProximityRadius   float64
	CollisionWarnings []*Unit

	launchSeq int
}

// NewCarrier creates an empty carrier with the configured carrier stats.
func NewCarrier(pos gamemath.Vector) *Carrier {
	cfg := config.Carrier
	c := &Carrier{
		FighterCapacity:       cfg.FighterCapacity,
		LaunchCooldown:        cfg.LaunchCooldown,
		LandingCooldown:       cfg.LandingCooldown,
		LaunchAnimationFrames: cfg.LaunchAnimationFrames,
		AnimationSpeed:        cfg.AnimationSpeed,
	}
	c.setup(KindCarrier, Friendly, pos, cfg.Stats)
	c.OriginalMaxSpeed = c.MaxSpeed
	c.OriginalMaxRotationSpeed = c.MaxRotationSpeed
	c.ProximityRadius = c.Radius * cfg.ProximityFactor
	c.LaunchPoints = []gamemath.Vector{
		{X: c.Radius, Y: 0},
		{X: -c.Radius, Y: 0},
		{X: 0, Y: c.Radius},
		{X: 0, Y: -c.Radius},
	}
	return c
}

// StoreFighter takes ownership of f if there is room. The fighter must
// already be out of the world.
func (c *Carrier) StoreFighter(f *Fighter) bool {
	if f == nil || len(c.StoredFighters) >= c.FighterCapacity {
		return false
	}
	if slices.Contains(c.StoredFighters, f) {
		return false
	}
	c.StoredFighters = append(c.StoredFighters, f)
	return true
}

// Update moves and fights like any unit. Flight-deck operations run
// separately in UpdateOperations and ProcessLandingQueue.
func (c *Carrier) Update(dt float64) []events.Effect {
	c.CollisionWarnings = c.CollisionWarnings[:0]
	if !c.Alive() {
		return nil
	}
	c.UpdateMovementRestrictions()
	return c.Unit.Update(dt)
}

// UpdateOperations ticks cooldowns and the launch animation, then serves
// at most one launch request. The launched fighter, if any, must join the
// world this tick.
func (c *Carrier) UpdateOperations(dt float64) *Fighter {
	if !c.Alive() {
		return nil
	}
	c.tickCooldowns(dt)
	c.animate(dt)
	launched := c.ProcessLaunchQueue()
	c.enforceInvariants()
	c.UpdateMovementRestrictions()
	return launched
}

func (c *Carrier) tickCooldowns(dt float64) {
	if c.CurrentLaunchCooldown > 0 {
		c.CurrentLaunchCooldown -= dt
		if c.CurrentLaunchCooldown <= 0 {
			c.CurrentLaunchCooldown = 0
			c.IsLaunching = false
		}
	}
	if c.CurrentLandingCooldown > 0 {
		c.CurrentLandingCooldown -= dt
		if c.CurrentLandingCooldown < 0 {
			c.CurrentLandingCooldown = 0
		}
	}
}

func (c *Carrier) animate(dt float64) {
	if !c.IsAnimatingLaunch {
		return
	}
	c.AnimationFrame += dt * c.AnimationSpeed
	if c.AnimationFrame >= c.LaunchAnimationFrames {
		c.IsAnimatingLaunch = false
		c.AnimationFrame = 0
	}
}

// enforceInvariants clamps state that correct callers never produce.
func (c *Carrier) enforceInvariants() {
	if len(c.StoredFighters) > c.FighterCapacity {
		c.StoredFighters = c.StoredFighters[:c.FighterCapacity]
		c.publish(events.Event{Kind: events.InvariantClamped, CarrierID: c.ID, Reason: "stored fighters over capacity"})
	}
	if len(c.LaunchQueue) > len(c.StoredFighters) {
		c.LaunchQueue = c.LaunchQueue[:len(c.StoredFighters)]
		c.publish(events.Event{Kind: events.InvariantClamped, CarrierID: c.ID, Reason: "launch queue over inventory"})
	}
}

// StoredCount returns the number of fighters aboard.
func (c *Carrier) StoredCount() int {
	return len(c.StoredFighters)
}

// Forward returns the carrier's unit heading vector.
func (c *Carrier) Forward() gamemath.Vector {
	return gamemath.Forward(c.Rotation)
}

// WorldLaunchPoints returns the perimeter launch points in world space.
func (c *Carrier) WorldLaunchPoints() []gamemath.Vector {
	out := make([]gamemath.Vector, len(c.LaunchPoints))
	for i, p := range c.LaunchPoints {
		out[i] = c.Pos.Add(p.Rotate(c.Rotation))
	}
	return out
}
