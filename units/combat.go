package units

import (
	"image/color"

	"github.com/automoto/starcarrier/config"
	"github.com/automoto/starcarrier/shared/events"
	"github.com/automoto/starcarrier/shared/gamemath"
)

// InRange reports whether target is within attacker's weapon range,
// measured center to center and inclusive.
func InRange(attacker, target *Unit) bool {
	return attacker.Pos.DistanceTo(target.Pos) <= attacker.AttackRange
}

// PerformAttack fires attacker at target when its weapon is ready and the
// target is in range. Damage always applies; the returned effects are an
// attack line plus an explosion if the shot was fatal.
func PerformAttack(attacker, target *Unit) []events.Effect {
	if !attacker.Alive() || !target.Alive() {
		return nil
	}
	if attacker.CurrentAttackCooldown > 0 || !InRange(attacker, target) {
		return nil
	}

	attacker.CurrentAttackCooldown = attacker.AttackCooldown
	target.TakeDamage(attacker.AttackPower)

	fx := []events.Effect{
		events.NewAttackLine(attacker.Pos, target.Pos, AttackColor(attacker.Faction), config.Combat.AttackEffectDuration),
	}
	if !target.Alive() {
		fx = append(fx, events.NewExplosion(target.Pos, config.Explosion, config.Combat.ExplosionRadius, config.Combat.ExplosionDuration))
	}
	return fx
}

// AttackColor returns the attack line color for a faction.
func AttackColor(f Faction) color.RGBA {
	if f == Enemy {
		return config.EnemyAttack
	}
	return config.FriendlyAttack
}

func (u *Unit) updateAttack(dt float64) []events.Effect {
	var target *Unit
	if u.Target != nil {
		target = u.Target.Unit
	}
	if !target.Alive() {
		u.Stop()
		u.CurrentAttackCooldown = 0
		return nil
	}
	if !InRange(u, target) {
		u.SetState(StateMoving)
		u.CurrentAttackCooldown = 0
		return nil
	}

	// Hold position and keep the guns on target.
	u.Rotation = gamemath.TurnToward(u.Rotation, gamemath.Bearing(u.Pos.X, u.Pos.Y, target.Pos.X, target.Pos.Y), u.MaxRotationSpeed*dt)
	u.coast(dt)

	u.CurrentAttackCooldown -= dt
	if u.CurrentAttackCooldown <= 0 {
		u.CurrentAttackCooldown = 0
		return PerformAttack(u, target)
	}
	return nil
}
