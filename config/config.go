package config

import "image/color"

// UnitConfig contains the combat and movement stats of one unit class
type UnitConfig struct {
	HP     int
	Radius float64
	Mass   float64 // collision weight

	// Movement
	MaxSpeed         float64 // world units per second
	Acceleration     float64 // world units per second squared
	MaxRotationSpeed float64 // degrees per second

	// Combat
	AttackRange    float64
	AttackPower    int
	AttackCooldown float64 // seconds between shots

	VisionRadius float64
}

// FighterConfig contains fighter stats and launch behavior
type FighterConfig struct {
	Stats UnitConfig

	LaunchSpeedMultiplier float64 // exit boost as a multiple of MaxSpeed
	PatrolDistance        float64 // waypoint distance ahead of the launch heading
	PatrolDuration        float64 // seconds before a patrolling fighter gives up and idles
	LaunchFadeDuration    float64 // seconds to fade in from opacity 0
}

// CarrierConfig contains carrier stats and flight-deck operations
type CarrierConfig struct {
	Stats UnitConfig

	FighterCapacity int
	InitialFighters int // loadout when a scenario does not say otherwise

	LaunchCooldown      float64 // seconds between launches
	LandingCooldown     float64 // seconds between landing queue pops
	StaleLandingPenalty float64 // cooldown after discarding a dead queue entry
	LaunchOffset        float64 // exit distance ahead of the nose, in carrier radii

	LaunchAnimationFrames float64
	AnimationSpeed        float64 // animation frames per second

	RestrictedSpeedFactor    float64
	RestrictedRotationFactor float64

	ProximityFactor   float64 // awareness radius in carrier radii
	PredictionHorizon float64 // seconds of lookahead for collision warnings
}

// LandingConfig contains the fighter landing-stage geometry and timing.
// Distances are in carrier radii unless noted.
type LandingConfig struct {
	// Approach
	ApproachDistance       float64 // waypoint behind the carrier
	ApproachTurnMultiplier float64
	ApproachMinSpeedFactor float64 // fraction of MaxSpeed at the start of the approach
	AlignWaypointRadii     float64 // in fighter radii
	AlignCarrierRadii      float64

	// Align
	HoldDistance   float64
	HoldCorrection float64 // fraction of the hold error closed per tick
	VelocityDecay  float64 // velocity multiplier per tick
	AlignTolerance float64 // degrees
	AlignHold      float64 // seconds the heading must stay in tolerance
	HeadingOffset  float64 // degrees added to the carrier heading

	// Land
	LandMinSpeedFactor float64
	LandCurveWeight    float64 // max share of the path following the carrier heading
	StoreDistance      float64
	StoreOpacity       float64

	Timeout        float64 // seconds without stage progress before aborting
	AbortClearance float64 // move-away distance after a failed store
}

// CombatConfig contains attack effect and targeting values
type CombatConfig struct {
	AttackEffectDuration float64
	ExplosionRadius      float64
	ExplosionDuration    float64
	ChaseArrivalMargin   float64 // attack-target moves stop this far inside AttackRange
	ArrivalThreshold     float64 // point-target arrival distance
	AlignmentFloor       float64 // minimum distance used when normalizing the target direction
	DestinationDuration  float64
	LaunchFlareDuration  float64
}

// CollisionConfig contains collision and avoidance tuning
type CollisionConfig struct {
	TieDistance           float64 // below this, separation direction is random
	AvoidanceFactor       float64 // avoidance threshold in carrier radii
	AvoidanceSafetyMargin float64
	CellSize              int // resolv broad-phase cell size
}

// VisibilityConfig contains fog-of-war grid settings
type VisibilityConfig struct {
	CellSize      int
	GateTargeting bool // only visible enemies can be auto-targeted
}

// SimulationConfig contains world and loop settings
type SimulationConfig struct {
	TickRate    int
	WorldWidth  int
	WorldHeight int
	Seed        uint64
	LogLevel    string
}

// Global configuration instances
var Unit UnitConfig
var Enemy UnitConfig
var Fighter FighterConfig
var Carrier CarrierConfig
var Landing LandingConfig
var Combat CombatConfig
var Collision CollisionConfig
var Visibility VisibilityConfig
var Simulation SimulationConfig

// Faction colors
var (
	FriendlyAttack = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	EnemyAttack    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Explosion      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LaunchFlare    = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Destination    = color.RGBA{R: 100, G: 255, B: 100, A: 255}
)

func init() {
	defaults()
}

// Reset restores every config value to its built-in default.
func Reset() {
	defaults()
}

func defaults() {
	Unit = UnitConfig{
		HP:     100,
		Radius: 15,
		Mass:   1.0,

		MaxSpeed:         100,
		Acceleration:     200,
		MaxRotationSpeed: 180,

		AttackRange:    50,
		AttackPower:    10,
		AttackCooldown: 1.0,

		VisionRadius: 100,
	}
	Enemy = Unit
	Enemy.AttackRange = 90 // reaches past a carrier's hull

	Fighter = FighterConfig{
		Stats: UnitConfig{
			HP:               60,
			Radius:           8,
			Mass:             1.0,
			MaxSpeed:         150,
			Acceleration:     300,
			MaxRotationSpeed: 270,
			AttackRange:      80,
			AttackPower:      6,
			AttackCooldown:   0.6,
			VisionRadius:     150,
		},
		LaunchSpeedMultiplier: 3.0,
		PatrolDistance:        300,
		PatrolDuration:        30,
		LaunchFadeDuration:    0.5,
	}

	Carrier = CarrierConfig{
		Stats: UnitConfig{
			HP:               500,
			Radius:           50,
			Mass:             10.0,
			MaxSpeed:         50,
			Acceleration:     50,
			MaxRotationSpeed: 45,
			AttackRange:      300,
			AttackPower:      40,
			AttackCooldown:   2.0,
			VisionRadius:     250,
		},
		FighterCapacity: 10,
		InitialFighters: 6,

		LaunchCooldown:      1.0,
		LandingCooldown:     1.0,
		StaleLandingPenalty: 0.2,
		LaunchOffset:        1.2,

		LaunchAnimationFrames: 30,
		AnimationSpeed:        40,

		RestrictedSpeedFactor:    0.3,
		RestrictedRotationFactor: 0.5,

		ProximityFactor:   3.0,
		PredictionHorizon: 2.0,
	}

	Landing = LandingConfig{
		ApproachDistance:       3.0,
		ApproachTurnMultiplier: 2.5,
		ApproachMinSpeedFactor: 0.5,
		AlignWaypointRadii:     2.0,
		AlignCarrierRadii:      2.5,

		HoldDistance:   2.0,
		HoldCorrection: 0.10,
		VelocityDecay:  0.95,
		AlignTolerance: 10,
		AlignHold:      0.5,
		HeadingOffset:  180,

		LandMinSpeedFactor: 0.25,
		LandCurveWeight:    0.5,
		StoreDistance:      0.6,
		StoreOpacity:       30,

		Timeout:        10,
		AbortClearance: 2.0,
	}

	Combat = CombatConfig{
		AttackEffectDuration: 0.15,
		ExplosionRadius:      50,
		ExplosionDuration:    0.5,
		ChaseArrivalMargin:   5,
		ArrivalThreshold:     5,
		AlignmentFloor:       0.1,
		DestinationDuration:  0.75,
		LaunchFlareDuration:  0.4,
	}

	Collision = CollisionConfig{
		TieDistance:           0.1,
		AvoidanceFactor:       1.5,
		AvoidanceSafetyMargin: 20,
		CellSize:              32,
	}

	Visibility = VisibilityConfig{
		CellSize:      10,
		GateTargeting: true,
	}

	Simulation = SimulationConfig{
		TickRate:    60,
		WorldWidth:  4000,
		WorldHeight: 3000,
		Seed:        1,
		LogLevel:    "info",
	}
}
