package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the optional JSON overlay read by Load.
const FileName = "starcarrier.cfg.json"

type binding struct {
	key string
	ptr any
}

func unitBindings(prefix string, u *UnitConfig) []binding {
	return []binding{
		{prefix + ".hp", &u.HP},
		{prefix + ".radius", &u.Radius},
		{prefix + ".mass", &u.Mass},
		{prefix + ".maxSpeed", &u.MaxSpeed},
		{prefix + ".acceleration", &u.Acceleration},
		{prefix + ".maxRotationSpeed", &u.MaxRotationSpeed},
		{prefix + ".attackRange", &u.AttackRange},
		{prefix + ".attackPower", &u.AttackPower},
		{prefix + ".attackCooldown", &u.AttackCooldown},
		{prefix + ".visionRadius", &u.VisionRadius},
	}
}

func bindings() []binding {
	b := []binding{
		{"logLevel", &Simulation.LogLevel},
		{"simulation.tickRate", &Simulation.TickRate},
		{"simulation.worldWidth", &Simulation.WorldWidth},
		{"simulation.worldHeight", &Simulation.WorldHeight},
		{"simulation.seed", &Simulation.Seed},

		{"fighter.launchSpeedMultiplier", &Fighter.LaunchSpeedMultiplier},
		{"fighter.patrolDistance", &Fighter.PatrolDistance},
		{"fighter.patrolDuration", &Fighter.PatrolDuration},
		{"fighter.launchFadeDuration", &Fighter.LaunchFadeDuration},

		{"carrier.fighterCapacity", &Carrier.FighterCapacity},
		{"carrier.initialFighters", &Carrier.InitialFighters},
		{"carrier.launchCooldown", &Carrier.LaunchCooldown},
		{"carrier.landingCooldown", &Carrier.LandingCooldown},
		{"carrier.staleLandingPenalty", &Carrier.StaleLandingPenalty},
		{"carrier.restrictedSpeedFactor", &Carrier.RestrictedSpeedFactor},
		{"carrier.restrictedRotationFactor", &Carrier.RestrictedRotationFactor},
		{"carrier.launchOffset", &Carrier.LaunchOffset},
		{"carrier.launchAnimationFrames", &Carrier.LaunchAnimationFrames},
		{"carrier.animationSpeed", &Carrier.AnimationSpeed},
		{"carrier.proximityFactor", &Carrier.ProximityFactor},
		{"carrier.predictionHorizon", &Carrier.PredictionHorizon},

		{"landing.approachDistance", &Landing.ApproachDistance},
		{"landing.approachTurnMultiplier", &Landing.ApproachTurnMultiplier},
		{"landing.approachMinSpeedFactor", &Landing.ApproachMinSpeedFactor},
		{"landing.alignWaypointRadii", &Landing.AlignWaypointRadii},
		{"landing.alignCarrierRadii", &Landing.AlignCarrierRadii},
		{"landing.holdDistance", &Landing.HoldDistance},
		{"landing.holdCorrection", &Landing.HoldCorrection},
		{"landing.velocityDecay", &Landing.VelocityDecay},
		{"landing.alignTolerance", &Landing.AlignTolerance},
		{"landing.alignHold", &Landing.AlignHold},
		{"landing.headingOffset", &Landing.HeadingOffset},
		{"landing.landMinSpeedFactor", &Landing.LandMinSpeedFactor},
		{"landing.landCurveWeight", &Landing.LandCurveWeight},
		{"landing.storeDistance", &Landing.StoreDistance},
		{"landing.storeOpacity", &Landing.StoreOpacity},
		{"landing.timeout", &Landing.Timeout},
		{"landing.abortClearance", &Landing.AbortClearance},

		{"combat.attackEffectDuration", &Combat.AttackEffectDuration},
		{"combat.explosionRadius", &Combat.ExplosionRadius},
		{"combat.explosionDuration", &Combat.ExplosionDuration},
		{"combat.chaseArrivalMargin", &Combat.ChaseArrivalMargin},
		{"combat.arrivalThreshold", &Combat.ArrivalThreshold},
		{"combat.alignmentFloor", &Combat.AlignmentFloor},
		{"combat.destinationDuration", &Combat.DestinationDuration},
		{"combat.launchFlareDuration", &Combat.LaunchFlareDuration},

		{"collision.tieDistance", &Collision.TieDistance},
		{"collision.avoidanceFactor", &Collision.AvoidanceFactor},
		{"collision.avoidanceSafetyMargin", &Collision.AvoidanceSafetyMargin},
		{"collision.cellSize", &Collision.CellSize},

		{"visibility.cellSize", &Visibility.CellSize},
		{"visibility.gateTargeting", &Visibility.GateTargeting},
	}
	b = append(b, unitBindings("unit", &Unit)...)
	b = append(b, unitBindings("enemy", &Enemy)...)
	b = append(b, unitBindings("fighter.stats", &Fighter.Stats)...)
	b = append(b, unitBindings("carrier.stats", &Carrier.Stats)...)
	return b
}

// Load overlays values from FileName in configDir onto the built-in
// defaults. A missing file is not an error; an unreadable one is.
func Load(configDir string) error {
	all := bindings()
	for _, b := range all {
		viper.SetDefault(b.key, value(b.ptr))
	}

	if configDir != "" {
		viper.SetConfigName(FileName)
		viper.AddConfigPath(configDir)
		viper.SetConfigType("json")

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	for _, b := range all {
		apply(b)
	}
	return nil
}

func value(ptr any) any {
	switch p := ptr.(type) {
	case *int:
		return *p
	case *uint64:
		return *p
	case *float64:
		return *p
	case *string:
		return *p
	case *bool:
		return *p
	}
	return nil
}

func apply(b binding) {
	switch p := b.ptr.(type) {
	case *int:
		*p = viper.GetInt(b.key)
	case *uint64:
		*p = viper.GetUint64(b.key)
	case *float64:
		*p = viper.GetFloat64(b.key)
	case *string:
		*p = viper.GetString(b.key)
	case *bool:
		*p = viper.GetBool(b.key)
	}
}
